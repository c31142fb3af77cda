package util

import (
	"fmt"
	"time"
)

// DaysInMonth 返回指定年月的天数，闰年由 time 包处理
func DaysInMonth(year int, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EnumerateDays 枚举指定年月的每一个自然日，升序
func EnumerateDays(year int, month int) []time.Time {
	total := DaysInMonth(year, month)
	days := make([]time.Time, 0, total)
	for d := 1; d <= total; d++ {
		days = append(days, time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC))
	}
	return days
}

// EnumerateMonths 枚举指定年份的 12 个月份键，格式 YYYY-MM
func EnumerateMonths(year int) []string {
	months := make([]string, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, fmt.Sprintf("%04d-%02d", year, m))
	}
	return months
}

// MonthKey 生成 YYYY-MM 格式的月份键
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// GetMidnight 截断到当日零点
func GetMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
