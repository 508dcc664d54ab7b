package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/store"
	"github.com/google/uuid"
)

const accountColumns = `id, custom_user_id, username, email, phone_number, first_name, last_name,
	gender, bio, password_hash, is_active, is_staff, is_superuser, is_owner, date_joined, last_login`

type accountsRepo struct {
	db  dbtx
	now func() time.Time
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var (
		a          domain.Account
		customID   string
		email      sql.NullString
		phone      sql.NullString
		firstName  sql.NullString
		lastName   sql.NullString
		bio        sql.NullString
		dateJoined string
		lastLogin  sql.NullString
	)
	err := row.Scan(
		&a.ID, &customID, &a.Username, &email, &phone, &firstName, &lastName,
		&a.Gender, &bio, &a.PasswordHash, &a.IsActive, &a.IsStaff, &a.IsSuperuser, &a.IsOwner,
		&dateJoined, &lastLogin,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}

	if a.CustomUserID, err = uuid.Parse(customID); err != nil {
		return domain.Account{}, fmt.Errorf("sqlite: account %d custom_user_id: %w", a.ID, err)
	}
	if a.DateJoined, err = parseTime(dateJoined); err != nil {
		return domain.Account{}, err
	}
	if a.LastLogin, err = parseNullTime(lastLogin); err != nil {
		return domain.Account{}, err
	}
	a.Email = mapNullStringPtr(email)
	a.PhoneNumber = mapNullStringPtr(phone)
	a.FirstName = mapNullStringPtr(firstName)
	a.LastName = mapNullStringPtr(lastName)
	a.Bio = mapNullStringPtr(bio)
	return a, nil
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id int64) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

func (r *accountsRepo) GetAccountByUsername(ctx context.Context, username string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE username = ?`, username)
	return scanAccount(row)
}

func (r *accountsRepo) FindFirstMatching(ctx context.Context, m store.AccountMatch) (domain.Account, error) {
	username := sql.NullString{String: m.Username, Valid: m.Username != ""}
	email := mapOptionalString(m.Email)
	phone := mapOptionalString(m.PhoneNumber)

	// NULL never compares equal, so absent fields cannot match.
	row := r.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE (username = ? OR email = ? OR phone_number = ?) AND id <> ?
		ORDER BY CASE
			WHEN username = ? THEN 0
			WHEN email = ? THEN 1
			ELSE 2
		END, id
		LIMIT 1`,
		username, email, phone, m.ExcludeID,
		username, email,
	)
	return scanAccount(row)
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) (domain.Account, error) {
	if a.CustomUserID == uuid.Nil {
		a.CustomUserID = uuid.New()
	}
	if a.DateJoined.IsZero() {
		a.DateJoined = r.now().UTC()
	}
	if a.Gender == "" {
		a.Gender = domain.DefaultGender
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (custom_user_id, username, email, phone_number, first_name, last_name,
			gender, bio, password_hash, is_active, is_staff, is_superuser, is_owner, date_joined)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.CustomUserID.String(), a.Username,
		mapOptionalString(a.Email), mapOptionalString(a.PhoneNumber),
		mapOptionalString(a.FirstName), mapOptionalString(a.LastName),
		a.Gender, mapOptionalString(a.Bio), a.PasswordHash,
		a.IsActive, a.IsStaff, a.IsSuperuser, a.IsOwner,
		formatTime(a.DateJoined),
	)
	if err != nil {
		return domain.Account{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Account{}, err
	}
	return r.GetAccountByID(ctx, id)
}

func (r *accountsRepo) UpdateAccount(ctx context.Context, id int64, p domain.AccountPatch) (domain.Account, error) {
	var set setClause
	if p.Email != nil {
		set.add("email", nullIfEmpty(*p.Email))
	}
	if p.PhoneNumber != nil {
		set.add("phone_number", nullIfEmpty(*p.PhoneNumber))
	}
	if p.FirstName != nil {
		set.add("first_name", *p.FirstName)
	}
	if p.LastName != nil {
		set.add("last_name", *p.LastName)
	}
	if p.Gender != nil {
		set.add("gender", *p.Gender)
	}
	if p.Bio != nil {
		set.add("bio", *p.Bio)
	}
	if p.PasswordHash != nil {
		set.add("password_hash", *p.PasswordHash)
	}
	if p.IsActive != nil {
		set.add("is_active", *p.IsActive)
	}
	if p.IsStaff != nil {
		set.add("is_staff", *p.IsStaff)
	}
	if p.IsSuperuser != nil {
		set.add("is_superuser", *p.IsSuperuser)
	}
	if p.IsOwner != nil {
		set.add("is_owner", *p.IsOwner)
	}

	if set.empty() {
		return r.GetAccountByID(ctx, id)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET `+set.String()+` WHERE id = ?`,
		append(set.args, id)...,
	)
	if err != nil {
		return domain.Account{}, mapConstraint(err)
	}
	if err := expectAffected(res); err != nil {
		return domain.Account{}, err
	}
	return r.GetAccountByID(ctx, id)
}

func (r *accountsRepo) TouchLastLogin(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET last_login = ? WHERE id = ?`,
		formatTime(r.now()), id,
	)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

func (r *accountsRepo) DeleteAccount(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return expectAffected(res)
}

// tierPredicate mirrors domain.Roles.Tier in SQL.
func tierPredicate(t domain.Tier) (string, error) {
	switch t {
	case domain.TierOwner:
		return `is_owner = 1`, nil
	case domain.TierSuperuser:
		return `is_owner = 0 AND is_superuser = 1`, nil
	case domain.TierStaff:
		return `is_owner = 0 AND is_superuser = 0 AND is_staff = 1`, nil
	case domain.TierNormal:
		return `is_owner = 0 AND is_superuser = 0 AND is_staff = 0`, nil
	default:
		return "", fmt.Errorf("sqlite: unknown tier %d", t)
	}
}

func (r *accountsRepo) ListAccounts(ctx context.Context, tier domain.Tier, page domain.Page) ([]domain.Account, error) {
	pred, err := tierPredicate(tier)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE `+pred+` ORDER BY id LIMIT ? OFFSET ?`,
		page.Limit, page.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Account, 0, page.Limit)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *accountsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
