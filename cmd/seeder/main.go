package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/daonlab/crm-calendar-backend/internal/config"
	"github.com/daonlab/crm-calendar-backend/internal/domain"
	"github.com/daonlab/crm-calendar-backend/internal/service"
)

// Seeds a demo operator account and a handful of campaigns for local
// development. Safe to re-run: existing rows are kept.
func main() {
	config.LoadDotEnv()
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Campaign{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "changeme"
	}
	hash, err := service.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := domain.User{
		Email:        "admin@daonlab.kr",
		Name:         "관리자",
		PasswordHash: hash,
	}
	if err := db.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error; err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("Seeded user: %s\n", admin.Email)

	campaigns := []domain.Campaign{
		{
			Title:            "봄맞이 인터넷 가입 프로모션",
			SendAt:           "2026-03-02T10:00:00",
			BizUnit:          "인터넷, 모바일",
			Channel:          "LMS",
			AudienceSize:     5000,
			ExpectedReaction: domain.ReactionHigh,
			SendMessage:      "인터넷+모바일 결합 시 최대 혜택을 확인하세요.",
			CreatedBy:        admin.ID,
		},
		{
			Title:            "렌탈 정수기 봄 점검 안내",
			SendAt:           "2026-03-02T14:30:00",
			BizUnit:          "렌탈",
			Channel:          "알림톡",
			AudienceSize:     12000,
			ExpectedReaction: domain.ReactionMid,
			CSMemo:           "점검 일정 문의 증가 예상",
			CreatedBy:        admin.ID,
		},
		{
			Title:            "알뜰폰 요금제 개편 안내",
			SendAt:           "2026-03-15T09:00:00",
			BizUnit:          "알뜰폰",
			Channel:          "MMS",
			AudienceSize:     8500,
			ExpectedReaction: domain.ReactionLow,
			CreatedBy:        admin.ID,
		},
		{
			Title:            "이사 성수기 견적 이벤트",
			SendAt:           "2026-03-28T11:00:00",
			BizUnit:          "이사, 청소",
			Channel:          "친구톡",
			AudienceSize:     3000,
			ExpectedReaction: domain.ReactionHigh,
			CreatedBy:        admin.ID,
		},
	}

	for _, c := range campaigns {
		var count int64
		db.Model(&domain.Campaign{}).
			Where("title = ? AND send_at = ?", c.Title, c.SendAt).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			log.Fatalf("failed to seed campaign %q: %v", c.Title, err)
		}
		fmt.Printf("Seeded campaign: %s\n", c.Title)
	}

	fmt.Println("Database seeding completed successfully!")
}
