package services

import (
	"testing"
	"time"

	"qrmenu-backend/entity"
	"qrmenu-backend/repository"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestScanRecorder_RecordsAsynchronously(t *testing.T) {
	db := newTestDB(t)
	rest := createRestaurant(t, db, "tarayici")
	rec := NewScanRecorder(repository.NewScanRepository(db), zaptest.NewLogger(t))

	rec.Record(rest.ID, "Mozilla/5.0", "https://google.com")

	assert.Eventually(t, func() bool {
		var count int64
		db.Model(&entity.ScanEvent{}).Where("restaurant_id = ?", rest.ID).Count(&count)
		return count == 1
	}, 2*time.Second, 10*time.Millisecond)

	var ev entity.ScanEvent
	assert.NoError(t, db.Where("restaurant_id = ?", rest.ID).First(&ev).Error)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "Mozilla/5.0", ev.UserAgent)
	assert.Equal(t, "https://google.com", ev.Referrer)
}

func TestScanRecorder_FailureNeverPanicsCaller(t *testing.T) {
	db := newTestDB(t)
	rec := NewScanRecorder(repository.NewScanRepository(db), zaptest.NewLogger(t))

	// drop the table so the insert fails; Record must stay silent
	assert.NoError(t, db.Migrator().DropTable(&entity.ScanEvent{}))
	assert.NotPanics(t, func() {
		rec.Record(1, "ua", "ref")
		time.Sleep(50 * time.Millisecond)
	})
}
