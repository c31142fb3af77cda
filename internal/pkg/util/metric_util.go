package util

import (
	"math"
)

// EngagementRate 计算互动率百分比，保留 1 位小数。
// reach 为 0 或负数时直接返回 0.0，不做除法
func EngagementRate(likes, comments, shares, saved int, reach int) float64 {
	if reach <= 0 {
		return 0.0
	}
	rate := float64(likes+comments+shares+saved) / float64(reach) * 100
	return Round1(rate)
}

// Round1 四舍五入保留 1 位小数
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// IntOrDefault 解引用可空计数字段，空值回退到指定默认值
func IntOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
