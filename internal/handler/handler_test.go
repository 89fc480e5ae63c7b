package handler

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

// fakeCloud records uploads and removals; a slot listed in failSlots fails
// its upload.
type fakeCloud struct {
	failSlots map[string]bool
	folders   map[string][]string
	uploaded  []string
	removed   []string
}

func newFakeCloud() *fakeCloud {
	return &fakeCloud{
		failSlots: make(map[string]bool),
		folders:   make(map[string][]string),
	}
}

func (f *fakeCloud) UploadImage(_ context.Context, file io.Reader, folder, publicID string) (string, error) {
	slot := publicID
	if i := strings.LastIndex(publicID, "-"); i > 0 {
		slot = publicID[:i]
	}
	if f.failSlots[slot] {
		return "", errors.New("upload rejected")
	}
	f.uploaded = append(f.uploaded, folder+"/"+publicID)
	return "https://cdn.example.com/" + folder + "/" + publicID, nil
}

func (f *fakeCloud) ListFolder(_ context.Context, folder string) ([]string, error) {
	return f.folders[folder], nil
}

func (f *fakeCloud) RemoveAssets(_ context.Context, publicIDs []string) error {
	f.removed = append(f.removed, publicIDs...)
	return nil
}
