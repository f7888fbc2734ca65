package control

import "math"

// RewardRate 每借出 10 卢比得 1 $ROZI
const RewardRate = 0.1

// Reward 借出金额对应的代币奖励，只用于展示，不累计
func Reward(amount int) int {
	if amount <= 0 {
		return 0
	}
	return int(math.Floor(float64(amount) * RewardRate))
}

// Percent 四舍五入的百分比，whole 为 0 时返回 0
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}
