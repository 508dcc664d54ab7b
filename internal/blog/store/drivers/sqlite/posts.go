package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
)

const postColumns = `id, title, slug, text, blog_photo, short_description, save_type, author, created, modified, is_delete`

type postsRepo struct {
	db  dbtx
	now func() time.Time
}

func scanPost(row rowScanner) (domain.Post, error) {
	var (
		p         domain.Post
		photo     sql.NullString
		shortDesc sql.NullString
		author    sql.NullInt64
		created   string
		modified  string
	)
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Text, &photo, &shortDesc, &p.SaveType, &author,
		&created, &modified, &p.IsDelete)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	if p.Created, err = parseTime(created); err != nil {
		return domain.Post{}, err
	}
	if p.Modified, err = parseTime(modified); err != nil {
		return domain.Post{}, err
	}
	p.BlogPhoto = mapNullStringPtr(photo)
	p.ShortDescription = mapNullStringPtr(shortDesc)
	p.Author = mapNullInt64Ptr(author)
	return p, nil
}

func (r *postsRepo) GetPostByID(ctx context.Context, id int64) (domain.Post, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	return scanPost(row)
}

func (r *postsRepo) ListPosts(ctx context.Context, page domain.Page, includeDeleted bool) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+postColumns+` FROM posts
		WHERE ? OR is_delete = 0
		ORDER BY id LIMIT ? OFFSET ?`,
		includeDeleted, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Post, 0, page.Limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) (domain.Post, error) {
	now := r.now().UTC()
	if p.SaveType == "" {
		p.SaveType = domain.DefaultSaveType
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (title, slug, text, blog_photo, short_description, save_type, author,
			created, modified, is_delete)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Slug, p.Text,
		mapOptionalString(p.BlogPhoto), mapOptionalString(p.ShortDescription),
		p.SaveType, mapOptionalInt64(p.Author),
		formatTime(now), formatTime(now), p.IsDelete,
	)
	if err != nil {
		return domain.Post{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Post{}, err
	}
	return r.GetPostByID(ctx, id)
}

func (r *postsRepo) UpdatePost(ctx context.Context, id int64, p domain.PostPatch) (domain.Post, error) {
	var set setClause
	if p.Title != nil {
		set.add("title", *p.Title)
	}
	if p.Slug != nil {
		set.add("slug", *p.Slug)
	}
	if p.Text != nil {
		set.add("text", *p.Text)
	}
	if p.BlogPhoto != nil {
		set.add("blog_photo", *p.BlogPhoto)
	}
	if p.ShortDescription != nil {
		set.add("short_description", *p.ShortDescription)
	}
	if p.SaveType != nil {
		set.add("save_type", *p.SaveType)
	}
	if p.IsDelete != nil {
		set.add("is_delete", *p.IsDelete)
	}
	set.add("modified", formatTime(r.now()))

	res, err := r.db.ExecContext(ctx,
		`UPDATE posts SET `+set.String()+` WHERE id = ?`,
		append(set.args, id)...,
	)
	if err != nil {
		return domain.Post{}, mapConstraint(err)
	}
	if err := expectAffected(res); err != nil {
		return domain.Post{}, err
	}
	return r.GetPostByID(ctx, id)
}

func (r *postsRepo) DeletePost(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (r *postsRepo) NullifyAuthor(ctx context.Context, authorID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE posts SET author = NULL, modified = ? WHERE author = ?`,
		formatTime(r.now()), authorID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *postsRepo) DeleteByAuthor(ctx context.Context, authorID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE author = ?`, authorID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
