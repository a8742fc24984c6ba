package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/staffhub-dev/staffhub/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupCompanyPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS companies (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		industry VARCHAR(100) NOT NULL,
		location VARCHAR(100) NOT NULL,
		website VARCHAR(255),
		email VARCHAR(100) NOT NULL UNIQUE,
		phone VARCHAR(30) NOT NULL DEFAULT '',
		employees INT NOT NULL DEFAULT 0,
		founded VARCHAR(10),
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestCompanyRepositories(t *testing.T) {
	db, teardown := setupCompanyPostgresContainer(t)
	defer teardown()

	writeRepo := NewCompanyWriteRepository(db)
	readRepo := NewCompanyReadRepository(db)
	ctx := context.Background()

	acme, err := writeRepo.Create(ctx, models.CompanyCreate{
		Name:      "Acme",
		Industry:  "Manufacturing",
		Location:  "Springfield",
		Email:     "contact@acme.example",
		Employees: 120,
		Status:    models.CompanyStatusActive,
	})
	assert.NoError(t, err)
	assert.NotZero(t, acme.ID)
	assert.Equal(t, 120, acme.Employees)

	t.Run("duplicate email", func(t *testing.T) {
		dup, err := writeRepo.Create(ctx, models.CompanyCreate{
			Name:     "Acme Clone",
			Industry: "Manufacturing",
			Location: "Springfield",
			Email:    "contact@acme.example",
			Status:   models.CompanyStatusActive,
		})
		assert.ErrorIs(t, err, ErrUniqueViolation)
		assert.Nil(t, dup)
	})

	t.Run("search by industry", func(t *testing.T) {
		got, err := readRepo.Search(ctx, "manufact")
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("update status", func(t *testing.T) {
		status := models.CompanyStatusPending
		updated, err := writeRepo.Update(ctx, acme.ID, models.CompanyPatch{Status: &status})
		assert.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	})

	t.Run("get and delete", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, acme.ID)
		assert.NoError(t, err)
		assert.NotNil(t, got)

		deleted, err := writeRepo.Delete(ctx, acme.ID)
		assert.NoError(t, err)
		assert.True(t, deleted)

		got, err = readRepo.GetByID(ctx, acme.ID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
