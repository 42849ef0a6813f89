package db

import (
	"context"
	"fmt"
	"time"
)

// Keys of the singleton image rows in village_settings.
const (
	SettingKopSurat    = "kopSurat"
	SettingVillageLogo = "villageLogo"
)

// MaxSettingImageBytes caps the stored data URL. Anything larger makes the
// print page crawl on the office connection.
const MaxSettingImageBytes = 700 * 1024

// SaveVillageImage upserts one of the branding images (letterhead or logo)
// stored as a base64 data URL.
func (d *Database) SaveVillageImage(ctx context.Context, key, imageData string) error {
	if key != SettingKopSurat && key != SettingVillageLogo {
		return fmt.Errorf("unknown setting %q", key)
	}
	if len(imageData) > MaxSettingImageBytes {
		return fmt.Errorf("ukuran gambar melebihi batas 700KB")
	}
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO village_settings (key, image_data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET image_data = EXCLUDED.image_data, updated_at = EXCLUDED.updated_at`,
		key, imageData, time.Now())
	return err
}

// GetVillageImage returns the stored data URL, or "" when the image has not
// been configured yet.
func (d *Database) GetVillageImage(ctx context.Context, key string) (string, error) {
	var imageData string
	err := d.Pool.QueryRow(ctx,
		`SELECT image_data FROM village_settings WHERE key = $1`, key).Scan(&imageData)
	if isNoRows(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return imageData, nil
}
