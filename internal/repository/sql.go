package repository

const (
	ListPublicationsSQL = `
    SELECT id, title, description, image_url, monthly_price, created_at
    FROM publications
    ORDER BY created_at DESC;
`
	GetPublicationSQL = `
    SELECT id, title, description, image_url, monthly_price, created_at
    FROM publications
    WHERE id = $1;
`
	InsertPublicationSQL = `
    INSERT INTO publications (title, description, image_url, monthly_price)
    VALUES ($1, $2, $3, $4)
    RETURNING id, title, description, image_url, monthly_price, created_at;
`
	UpdatePublicationSQL = `
    UPDATE publications
    SET title         = COALESCE($2, title),
        description   = COALESCE($3, description),
        image_url     = COALESCE($4, image_url),
        monthly_price = COALESCE($5, monthly_price)
    WHERE id = $1
    RETURNING id, title, description, image_url, monthly_price, created_at;
`
	DeletePublicationSQL = `
    DELETE FROM publications WHERE id = $1;
`
	GetSettingSQL = `
    SELECT id, key, value FROM settings WHERE key = $1;
`
	GetAllSettingsSQL = `
    SELECT id, key, value FROM settings;
`
	UpsertSettingSQL = `
    INSERT INTO settings (key, value)
    VALUES ($1, $2)
    ON CONFLICT (key)
    DO UPDATE SET value = EXCLUDED.value
    RETURNING id, key, value;
`
)
