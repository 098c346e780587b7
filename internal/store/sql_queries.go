package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-keeper/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, name, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, created_at
    FROM users
    WHERE login = $1;`

	getServerContactStates = `SELECT client_side_id, version, deleted, updated_at
		FROM contacts
		WHERE user_id = $1;`

	getContactsByID = `SELECT
			client_side_id,
			user_id,
			first_name,
			last_name,
			title,
			department,
			version,
			deleted,
			created_at,
			updated_at
		FROM contacts
		WHERE user_id = $1 AND client_side_id = ANY($2);`

	saveContact = `INSERT INTO contacts (
			client_side_id,
			user_id,
			first_name,
			last_name,
			title,
			department,
			version,
			deleted,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW());`

	deleteContact = `UPDATE contacts
		SET deleted = true, version = version + 1, updated_at = NOW()
		WHERE user_id = $1 AND client_side_id = $2 AND version = $3;`

	undeleteContact = `UPDATE contacts
		SET deleted = false, version = version + 1, updated_at = NOW()
		WHERE user_id = $1 AND client_side_id = $2 AND version = $3;`

	contactExists = `SELECT EXISTS (
			SELECT 1 FROM contacts WHERE user_id = $1 AND client_side_id = $2
		);`
)

// buildContactUpdateQuery dynamically builds the UPDATE statement for one
// optimistic-concurrency entry. Only the fields present in the update are
// included in the SET list; the version guard in the WHERE clause makes a
// stale entry a zero-row update.
func buildContactUpdateQuery(userID int64, update models.ContactUpdate) (string, []any, error) {
	builder := sq.Update("contacts").
		PlaceholderFormat(sq.Dollar).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"user_id":        userID,
			"client_side_id": update.ClientSideID,
			"version":        update.Version,
		})

	if update.Fields.FirstName != nil {
		builder = builder.Set("first_name", *update.Fields.FirstName)
	}
	if update.Fields.LastName != nil {
		builder = builder.Set("last_name", *update.Fields.LastName)
	}
	if update.Fields.Title != nil {
		builder = builder.Set("title", *update.Fields.Title)
	}
	if update.Fields.Department != nil {
		builder = builder.Set("department", *update.Fields.Department)
	}

	return builder.ToSql()
}
