package db

import (
	"context"
	"time"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

func (d *Database) CreateAnnouncement(ctx context.Context, a *models.Announcement) error {
	if a.PublishDate.IsZero() {
		a.PublishDate = time.Now()
	}
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO announcements (id, title, content, publish_date, author_name)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Title, a.Content, a.PublishDate, a.AuthorName)
	return err
}

// GetAnnouncements returns the newest announcements first. Both the public
// landing page and the admin list read from here.
func (d *Database) GetAnnouncements(ctx context.Context, limit int) ([]*models.Announcement, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, title, content, publish_date, author_name
		FROM announcements ORDER BY publish_date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.PublishDate, &a.AuthorName); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (d *Database) UpdateAnnouncement(ctx context.Context, id, title, content string) error {
	_, err := d.Pool.Exec(ctx, `
		UPDATE announcements SET title = $2, content = $3 WHERE id = $1`,
		id, title, content)
	return err
}

func (d *Database) DeleteAnnouncement(ctx context.Context, id string) error {
	_, err := d.Pool.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	return err
}
