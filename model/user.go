package model

// User 当前登录用户，由身份提供方给出
type User struct {
	ID          string `json:"id"`
	Address     string `json:"address"` // 链上账户地址
	DisplayName string `json:"displayName"`
}

// Session 会话状态
type Session struct {
	IsLoggedIn bool  `json:"isLoggedIn"`
	User       *User `json:"user,omitempty"`
}

// Profile 个人主页数据
type Profile struct {
	Role          string  `json:"role"`
	Rating        float64 `json:"rating"`
	PlatformScore int     `json:"platformScore"`
	RoziCoins     int     `json:"roziCoins"`
	TotalGigs     int     `json:"totalGigs"`
	TotalEarnings int     `json:"totalEarnings"` // 单位 ₹
}
