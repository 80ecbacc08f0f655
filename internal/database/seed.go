package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type seedAdmin struct {
	AdminID  string
	Name     string
	Role     string
	Password string
}

// Default admin accounts created once on a fresh database. Passwords are
// hashed before they touch the table.
var defaultAdmins = []seedAdmin{
	{AdminID: "A001", Name: "Mr. Banda", Role: "superadmin", Password: "admin123"},
	{AdminID: "A002", Name: "Mrs. Chikomo", Role: "finance", Password: "canteen321"},
	{AdminID: "A003", Name: "Mr. Dube", Role: "registry", Password: "register999"},
}

func SeedAdmins(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	for _, admin := range defaultAdmins {
		hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		res, err := db.ExecContext(ctx, `
			INSERT INTO admins (admin_id, name, role, password)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (admin_id) DO NOTHING
		`, admin.AdminID, admin.Name, admin.Role, string(hash))
		if err != nil {
			return fmt.Errorf("failed to seed admin %s: %w", admin.AdminID, err)
		}

		if rows, _ := res.RowsAffected(); rows > 0 {
			log.Info().
				Str("admin_id", admin.AdminID).
				Str("role", admin.Role).
				Msg("Default admin created")
		}
	}

	return nil
}
