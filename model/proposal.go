package model

import (
	"fmt"
	"strings"
	"time"
)

// Community 社区，提案按社区分组
type Community struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Members int    `json:"members"`
	Icon    string `json:"icon"`
}

// Proposal 社区提案
type Proposal struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CommunityID     string    `json:"communityId"` // 仅用于筛选，不代表归属
	YesVotes        int       `json:"yesVotes"`
	NoVotes         int       `json:"noVotes"`
	Deadline        time.Time `json:"deadline"` // 展示用，不做截止校验
	UserVotingPower int       `json:"userVotingPower"`
}

// Choice 投票选项
type Choice int

const (
	ChoiceYes Choice = iota + 1
	ChoiceNo
)

func (c Choice) String() string {
	switch c {
	case ChoiceYes:
		return "yes"
	case ChoiceNo:
		return "no"
	default:
		return fmt.Sprintf("Choice(%d)", int(c))
	}
}

// ParseChoice 只接受 yes / no，大小写不敏感
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return ChoiceYes, nil
	case "no":
		return ChoiceNo, nil
	}
	return 0, fmt.Errorf("invalid choice %q", s)
}
