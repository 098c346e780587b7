// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	upsertContact = `
		INSERT INTO contacts (
			client_side_id,
			user_id,
			first_name,
			last_name,
			title,
			department,
			version,
			deleted,
			status,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (client_side_id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name  = excluded.last_name,
			title      = excluded.title,
			department = excluded.department,
			version    = excluded.version,
			deleted    = excluded.deleted,
			status     = excluded.status,
			updated_at = excluded.updated_at;`

	getSingleContact = `
		SELECT
			client_side_id,
			user_id,
			first_name,
			last_name,
			title,
			department,
			version,
			deleted,
			status,
			created_at,
			updated_at
		FROM contacts
		WHERE user_id = $1 AND client_side_id = $2;`

	getAllContacts = `
		SELECT
			client_side_id,
			user_id,
			first_name,
			last_name,
			title,
			department,
			version,
			deleted,
			status,
			created_at,
			updated_at
		FROM contacts
		WHERE user_id = $1;`

	getAllContactStates = `
		SELECT
			client_side_id,
			version,
			deleted,
			status,
			updated_at
		FROM contacts
		WHERE user_id = $1;`

	updateContact = `
		UPDATE contacts SET
			first_name = $1,
			last_name  = $2,
			title      = $3,
			department = $4,
			version    = $5,
			deleted    = $6,
			status     = $7,
			updated_at = $8
		WHERE user_id = $9 AND client_side_id = $10;`

	markContactDeleted = `
		UPDATE contacts SET
			deleted    = true,
			status     = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2 AND client_side_id = $3;`

	restoreContact = `
		UPDATE contacts SET
			deleted    = false,
			status     = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2 AND client_side_id = $3;`

	setContactStatus = `
		UPDATE contacts SET
			status = $1
		WHERE user_id = $2 AND client_side_id = $3;`

	removeContact = `
		DELETE FROM contacts
		WHERE user_id = $1 AND client_side_id = $2;`

	incrementContactVersion = `
		UPDATE contacts
		SET version = version + 1
		WHERE client_side_id = $1
		  AND user_id = $2;`
)
