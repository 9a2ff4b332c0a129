package utils

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pridecenter/pride-backend/internal/models"
)

// AdminCreator is the part of the admin user service the importer needs.
type AdminCreator interface {
	CreateAdminUser(ctx context.Context, req *models.CreateAdminUserRequest) (*models.AdminUser, error)
}

// ImportResult summarises an import run.
type ImportResult struct {
	TotalRows int `json:"totalRows"`
	Created   int `json:"created"`
	// Generated holds the passwords made up for rows without one, by email.
	Generated map[string]string `json:"generated"`
	Errors    []string          `json:"errors"`
}

// CSVImporter seeds back-office accounts from a CSV export.
type CSVImporter struct {
	creator AdminCreator
}

// NewCSVImporter creates a new CSVImporter
func NewCSVImporter(creator AdminCreator) *CSVImporter {
	return &CSVImporter{creator: creator}
}

// ImportAdmins reads rows with name, email, optional role and optional
// password columns. Rows that fail are reported and skipped.
func (i *CSVImporter) ImportAdmins(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	nameIdx := findColumnIndex(header, []string{"Name", "Full Name"})
	emailIdx := findColumnIndex(header, []string{"Email", "E-mail", "Email Address"})
	roleIdx := findColumnIndex(header, []string{"Role"})
	passwordIdx := findColumnIndex(header, []string{"Password"})
	if emailIdx == -1 {
		return nil, errors.New("email column not found in CSV")
	}

	result := &ImportResult{Generated: map[string]string{}, Errors: []string{}}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		result.TotalRows++

		req := &models.CreateAdminUserRequest{
			Name:     column(record, nameIdx),
			Email:    column(record, emailIdx),
			Role:     strings.ToLower(column(record, roleIdx)),
			Password: column(record, passwordIdx),
		}
		if req.Email == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: missing email", line))
			continue
		}
		if req.Name == "" {
			req.Name = req.Email
		}
		if req.Role == "" {
			req.Role = models.RoleStaff
		}
		generated := false
		if req.Password == "" {
			if req.Password, err = GenerateRandomString(16); err != nil {
				return nil, fmt.Errorf("generate password: %w", err)
			}
			generated = true
		}

		if _, err := i.creator.CreateAdminUser(ctx, req); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d (%s): %v", line, req.Email, err))
			continue
		}
		result.Created++
		if generated {
			result.Generated[req.Email] = req.Password
		}
	}
	return result, nil
}

// findColumnIndex finds the index of a column in the header row
func findColumnIndex(header []string, possibleNames []string) int {
	for i, col := range header {
		for _, name := range possibleNames {
			if strings.EqualFold(strings.TrimSpace(col), name) {
				return i
			}
		}
	}
	return -1
}

func column(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
