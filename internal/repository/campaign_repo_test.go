package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/daonlab/crm-calendar-backend/internal/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	return gdb, mock
}

func campaignRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "send_at", "biz_unit", "channel", "audience_size", "expected_reaction"})
}

func TestListNoFilterOrdersBySendAt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `campaigns` ORDER BY send_at ASC",
	)).WillReturnRows(campaignRows().
		AddRow("1", "a", "2026-03-01T09:00:00", "인터넷", "LMS", 100, "HIGH").
		AddRow("2", "b", "2026-03-02T09:00:00", "렌탈", "MMS", 200, "MID"))

	campaigns, err := repo.List(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(campaigns) != 2 {
		t.Fatalf("want 2 campaigns, got %d", len(campaigns))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

// The biz-unit constraint must match the primary (first comma-separated)
// label only, mirroring domain.CampaignFilter.Matches.
func TestListBizUnitFiltersPrimaryLabel(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `campaigns` WHERE TRIM(SUBSTRING_INDEX(biz_unit, ',', 1)) IN (?) ORDER BY send_at ASC",
	)).WithArgs("인터넷").
		WillReturnRows(campaignRows().
			AddRow("1", "a", "2026-03-01T09:00:00", "인터넷, 모바일", "LMS", 100, "HIGH"))

	campaigns, err := repo.List(&domain.CampaignFilter{BizUnits: []string{"인터넷"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(campaigns) != 1 {
		t.Fatalf("want 1 campaign, got %d", len(campaigns))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListAllDimensions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `campaigns` WHERE TRIM(SUBSTRING_INDEX(biz_unit, ',', 1)) IN (?) "+
			"AND channel IN (?,?) AND expected_reaction IN (?) "+
			"AND LOWER(title) LIKE ? AND SUBSTR(send_at, 1, 10) >= ? AND SUBSTR(send_at, 1, 10) <= ? "+
			"ORDER BY send_at ASC",
	)).WithArgs("인터넷", "LMS", "MMS", "HIGH", "%spring%", "2026-03-01", "2026-03-31").
		WillReturnRows(campaignRows())

	_, err := repo.List(&domain.CampaignFilter{
		BizUnits:  []string{"인터넷"},
		Channels:  []string{"LMS", "MMS"},
		Reactions: []string{"HIGH"},
		Query:     "Spring",
		DateStart: "2026-03-01",
		DateEnd:   "2026-03-31",
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListEscapesLikeWildcards(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `campaigns` WHERE LOWER(title) LIKE ? ORDER BY send_at ASC",
	)).WithArgs(`%100\%%`).
		WillReturnRows(campaignRows())

	_, err := repo.List(&domain.CampaignFilter{Query: "100%"})
	if err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `campaigns` WHERE id = ? ORDER BY `campaigns`.`id` LIMIT 1",
	)).WithArgs("missing").
		WillReturnRows(campaignRows())

	campaign, err := repo.GetByID("missing")
	if err != nil {
		t.Fatal(err)
	}
	if campaign != nil {
		t.Fatalf("want nil for missing record, got %+v", campaign)
	}
}

func TestDeleteIssuesHardDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM `campaigns` WHERE id = ?",
	)).WithArgs("c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete("c-1"); err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
