package domain

import "slices"

// 사업부 목록
var BizUnits = []string{
	"인터넷",
	"렌탈",
	"모바일",
	"알뜰폰",
	"상조",
	"이사",
	"청소",
	"카드",
	"부동산",
	"인테리어",
}

// 사업부별 표시 컬러 (primary label 기준)
var BizUnitColors = map[string]string{
	"인터넷":  "#3B82F6",
	"렌탈":   "#10B981",
	"모바일":  "#8B5CF6",
	"알뜰폰":  "#06B6D4",
	"상조":   "#6B7280",
	"이사":   "#F59E0B",
	"청소":   "#14B8A6",
	"카드":   "#EF4444",
	"부동산":  "#F97316",
	"인테리어": "#A855F7",
}

// 발송 채널 목록
var Channels = []string{
	"LMS",
	"MMS",
	"친구톡",
	"알림톡",
	"브랜드메세지",
}

// Expected reaction levels
const (
	ReactionHigh = "HIGH"
	ReactionMid  = "MID"
	ReactionLow  = "LOW"
)

var Reactions = []string{ReactionHigh, ReactionMid, ReactionLow}

// IsValidReaction reports whether r is a member of the reaction enumeration
func IsValidReaction(r string) bool {
	return slices.Contains(Reactions, r)
}
