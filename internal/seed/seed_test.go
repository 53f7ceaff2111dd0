package seed

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/devcamper/internal/config"
)

func TestCreateDefaultData_EmptyTable(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()
	owner := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bootcamps")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bootcamps")).
		WithArgs(sqlmock.AnyArg(), SampleBootcamp.Name, SampleBootcamp.Description, owner.String()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectCommit()

	err = CreateDefaultData(context.Background(), conn, config.SeedConfig{Enabled: true, OwnerID: owner.String()}, zerolog.Nop())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDefaultData_SkipsWhenPresent(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bootcamps")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectCommit()

	err = CreateDefaultData(context.Background(), conn, config.SeedConfig{Enabled: true}, zerolog.Nop())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDefaultData_Disabled(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, CreateDefaultData(context.Background(), conn, config.SeedConfig{}, zerolog.Nop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
