package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
)

type localContactRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalContactRepository(db *DB, logger *logger.Logger) LocalContactRepository {
	return &localContactRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localContactRepository) SaveContacts(ctx context.Context, userID int64, records ...models.ContactRecord) error {
	log := logger.FromContext(ctx)

	for _, record := range records {
		_, err := l.DB.ExecContext(ctx, upsertContact,
			record.ClientSideID,
			userID,
			record.Contact.FirstName,
			record.Contact.LastName,
			record.Contact.Title,
			record.Contact.Department,
			record.Version,
			record.Deleted,
			record.Status,
			record.CreatedAt,
			record.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localContactRepository.SaveContacts").
				Int64("user_id", userID).
				Str("client_side_id", record.ClientSideID).
				Msg("failed to execute upsert for contact")
			return fmt.Errorf("failed to save contact (client_side_id=%s): %w", record.ClientSideID, err)
		}
	}

	return nil
}

func (l *localContactRepository) GetContact(ctx context.Context, clientSideID string, userID int64) (models.ContactRecord, error) {
	log := logger.FromContext(ctx)

	row := l.DB.QueryRowContext(ctx, getSingleContact, userID, clientSideID)
	if row.Err() != nil {
		err := row.Err()
		log.Err(err).
			Str("func", "localContactRepository.GetContact").
			Int64("user_id", userID).
			Str("client_side_id", clientSideID).
			Msg("failed to execute query for getting requested contact")
		return models.ContactRecord{}, fmt.Errorf("failed to query requested contact: %w", err)
	}

	record, scanErr := scanContactRow(row.Scan)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.ContactRecord{}, ErrContactNotFound
		}
		log.Err(scanErr).
			Str("func", "localContactRepository.GetContact").
			Int64("user_id", userID).
			Msg("failed to scan contact row")
		return models.ContactRecord{}, fmt.Errorf("failed to scan contact row: %w", scanErr)
	}

	return record, nil
}

func (l *localContactRepository) GetAllContacts(ctx context.Context, userID int64) ([]models.ContactRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllContacts, userID)
	if err != nil {
		log.Err(err).
			Str("func", "localContactRepository.GetAllContacts").
			Int64("user_id", userID).
			Msg("failed to execute query for getting all contacts")
		return nil, fmt.Errorf("failed to query all contacts: %w", err)
	}
	defer rows.Close()

	var records []models.ContactRecord

	for rows.Next() {
		record, scanErr := scanContactRow(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localContactRepository.GetAllContacts").
				Int64("user_id", userID).
				Msg("failed to scan contact row")
			return nil, fmt.Errorf("failed to scan contact row: %w", scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localContactRepository.GetAllContacts").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating contact rows: %w", rowsErr)
	}

	return records, nil
}

func (l *localContactRepository) GetAllStates(ctx context.Context, userID int64) ([]models.ContactState, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllContactStates, userID)
	if err != nil {
		log.Err(err).
			Str("func", "localContactRepository.GetAllStates").
			Int64("user_id", userID).
			Msg("failed to execute query for getting all states")
		return nil, fmt.Errorf("failed to query all states: %w", err)
	}
	defer rows.Close()

	var states []models.ContactState

	for rows.Next() {
		var state models.ContactState

		scanErr := rows.Scan(
			&state.ClientSideID,
			&state.Version,
			&state.Deleted,
			&state.Status,
			&state.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localContactRepository.GetAllStates").
				Int64("user_id", userID).
				Msg("failed to scan contact state row")
			return nil, fmt.Errorf("failed to scan contact state row: %w", scanErr)
		}

		states = append(states, state)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localContactRepository.GetAllStates").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating contact state rows: %w", rowsErr)
	}

	return states, nil
}

func (l *localContactRepository) UpdateContact(ctx context.Context, record models.ContactRecord) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, updateContact,
		record.Contact.FirstName,
		record.Contact.LastName,
		record.Contact.Title,
		record.Contact.Department,
		record.Version,
		record.Deleted,
		record.Status,
		record.UpdatedAt,
		record.UserID,
		record.ClientSideID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localContactRepository.UpdateContact").
			Int64("user_id", record.UserID).
			Str("client_side_id", record.ClientSideID).
			Msg("failed to execute update for contact")
		return fmt.Errorf("failed to update contact (client_side_id=%s): %w", record.ClientSideID, err)
	}

	return nil
}

func (l *localContactRepository) MarkDeleted(ctx context.Context, clientSideID string, userID int64, status models.SyncStatus) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, markContactDeleted, status, userID, clientSideID)
	if err != nil {
		log.Err(err).
			Str("func", "localContactRepository.MarkDeleted").
			Int64("user_id", userID).
			Str("client_side_id", clientSideID).
			Msg("failed to execute soft delete for contact")
		return fmt.Errorf("failed to delete contact (client_side_id=%s): %w", clientSideID, err)
	}

	return nil
}

func (l *localContactRepository) Restore(ctx context.Context, clientSideID string, userID int64, status models.SyncStatus) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, restoreContact, status, userID, clientSideID)
	if err != nil {
		log.Err(err).
			Str("func", "localContactRepository.Restore").
			Int64("user_id", userID).
			Str("client_side_id", clientSideID).
			Msg("failed to execute restore for contact")
		return fmt.Errorf("failed to restore contact (client_side_id=%s): %w", clientSideID, err)
	}

	return nil
}

func (l *localContactRepository) SetStatus(ctx context.Context, clientSideID string, userID int64, status models.SyncStatus) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, setContactStatus, status, userID, clientSideID)
	if err != nil {
		log.Err(err).
			Str("func", "localContactRepository.SetStatus").
			Int64("user_id", userID).
			Str("client_side_id", clientSideID).
			Str("status", status.String()).
			Msg("failed to execute status change for contact")
		return fmt.Errorf("failed to set contact status (client_side_id=%s): %w", clientSideID, err)
	}

	return nil
}

func (l *localContactRepository) RemoveContact(ctx context.Context, clientSideID string, userID int64) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, removeContact, userID, clientSideID)
	if err != nil {
		log.Err(err).
			Str("func", "localContactRepository.RemoveContact").
			Int64("user_id", userID).
			Str("client_side_id", clientSideID).
			Msg("failed to execute hard delete for contact")
		return fmt.Errorf("failed to remove contact (client_side_id=%s): %w", clientSideID, err)
	}

	return nil
}

func (l *localContactRepository) IncrementVersion(ctx context.Context, clientSideID string, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := l.DB.ExecContext(ctx, incrementContactVersion, clientSideID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "localContactRepository.IncrementVersion").
			Int64("user_id", userID).
			Str("client_side_id", clientSideID).
			Msg("failed to execute increment version for contact")
		return fmt.Errorf("failed to increment version (client_side_id=%s): %w", clientSideID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "localContactRepository.IncrementVersion").
			Int64("user_id", userID).
			Str("client_side_id", clientSideID).
			Msg("failed to get rows affected after increment version")
		return fmt.Errorf("failed to get rows affected (client_side_id=%s): %w", clientSideID, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "localContactRepository.IncrementVersion").
			Int64("user_id", userID).
			Str("client_side_id", clientSideID).
			Msg("no rows affected during increment version: record not found")
		return fmt.Errorf("failed to increment version (client_side_id=%s, user_id=%d): %w", clientSideID, userID, ErrContactNotFound)
	}

	return nil
}

// scanContactRow maps one contacts row into a record via the given Scan.
// Shared by single-row and multi-row reads; both put the columns in the
// same order.
func scanContactRow(scan func(dest ...any) error) (models.ContactRecord, error) {
	var record models.ContactRecord
	err := scan(
		&record.ClientSideID,
		&record.UserID,
		&record.Contact.FirstName,
		&record.Contact.LastName,
		&record.Contact.Title,
		&record.Contact.Department,
		&record.Version,
		&record.Deleted,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	return record, err
}
