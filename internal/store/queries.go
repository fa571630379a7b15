package store

const queryGetRefreshToken = `
	SELECT ebay_refresh_token FROM profiles WHERE user_id = $1`

const querySetRefreshToken = `
	INSERT INTO profiles (user_id, ebay_refresh_token, ebay_connected_at)
	VALUES ($1, $2, now())
	ON CONFLICT (user_id) DO UPDATE SET
		ebay_refresh_token = EXCLUDED.ebay_refresh_token,
		ebay_connected_at  = now(),
		updated_at         = now()`

const queryClearRefreshToken = `
	UPDATE profiles SET
		ebay_refresh_token = NULL,
		ebay_user_id       = NULL,
		ebay_username      = NULL,
		ebay_connected_at  = NULL,
		updated_at         = now()
	WHERE user_id = $1`

const queryCreateProfileIfAbsent = `
	INSERT INTO profiles (user_id, email, wallet_address)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id) DO NOTHING`

const queryGetProfile = `
	SELECT user_id, email, wallet_address, ebay_user_id, ebay_username,
		ebay_connected_at, created_at, updated_at
	FROM profiles WHERE user_id = $1`

const querySetEbayIdentity = `
	UPDATE profiles SET
		ebay_user_id  = $2,
		ebay_username = $3,
		updated_at    = now()
	WHERE user_id = $1`

const queryClearByEbayUserID = `
	UPDATE profiles SET
		ebay_refresh_token = NULL,
		ebay_user_id       = NULL,
		ebay_username      = NULL,
		ebay_connected_at  = NULL,
		updated_at         = now()
	WHERE ebay_user_id = $1`
