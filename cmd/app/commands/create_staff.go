package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	authService "github.com/mottuflow/fleetflow/internal/auth/service"
	staffDomain "github.com/mottuflow/fleetflow/internal/staff/domain"
	staffUsecase "github.com/mottuflow/fleetflow/internal/staff/usecase"
)

// RunCreateStaff registers a staff member from the command line, for
// bootstrapping the first account before the API has any users. When no
// password is given a random one is generated and printed once.
//
// Requirements: Database must be migrated and accessible.
func RunCreateStaff(
	ctx context.Context,
	staffUseCase staffUsecase.UseCase,
	secretService authService.SecretService,
	logger *slog.Logger,
	writer io.Writer,
	input staffUsecase.CreateStaffInput,
	format string,
) error {
	logger.Info("creating staff member", slog.String("email", input.Email))

	generated := false
	if input.Password == "" {
		plain, _, err := secretService.GeneratePassword()
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}
		// Suffix satisfies the password strength rule regardless of what
		// the random alphabet produced.
		input.Password = plain + "!A1a"
		generated = true
	}

	staff, err := staffUseCase.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}

	if format == "json" {
		outputStaffJSON(staff, input.Password, generated, writer)
	} else {
		outputStaffText(staff, input.Password, generated, writer)
	}

	logger.Info("staff member created successfully",
		slog.String("staff_id", staff.ID.String()),
		slog.String("role", staff.Role),
	)

	return nil
}

// outputStaffText outputs the result in human-readable text format.
func outputStaffText(staff *staffDomain.Staff, password string, generated bool, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nStaff member created successfully!")
	_, _ = fmt.Fprintf(writer, "ID: %s\n", staff.ID.String())
	_, _ = fmt.Fprintf(writer, "Email: %s\n", staff.Email)
	_, _ = fmt.Fprintf(writer, "Role: %s\n", staff.Role)
	if generated {
		_, _ = fmt.Fprintf(writer, "Password: %s\n", password)
		_, _ = fmt.Fprintln(writer, "\nIMPORTANT: The password is shown only once. Store it securely.")
	}
}

// outputStaffJSON outputs the result in JSON format for machine consumption.
func outputStaffJSON(staff *staffDomain.Staff, password string, generated bool, writer io.Writer) {
	result := map[string]string{
		"id":    staff.ID.String(),
		"email": staff.Email,
		"role":  staff.Role,
	}
	if generated {
		result["password"] = password
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
