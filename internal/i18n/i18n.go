// Package i18n holds the bilingual message table and the locale-aware
// date/time formatting used by every surface that prints timestamps.
// Grouping and export must agree on calendar-day boundaries, so all of
// that formatting lives here.
package i18n

import "time"

// Language selects the display language.
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// DefaultLanguage is used when the configured value is absent or invalid.
const DefaultLanguage = Chinese

// ParseLanguage normalizes a configured language value, falling back to the
// default for anything unrecognized.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case English, Chinese:
		return Language(s)
	default:
		return DefaultLanguage
	}
}

var translations = map[Language]map[string]string{
	English: {
		"today":           "Today",
		"yesterday":       "Yesterday",
		"noLogs":          "No logs yet.",
		"startTyping":     "Type below to start your day.",
		"placeholder":     "What are you working on?",
		"noLogsFound":     "No logs found",
		"copied":          "Copied!",
		"importSuccess":   "Imported %d entries.",
		"importError":     "No valid entries found in the pasted text.",
		"reportNoKey":     "API Key missing",
		"reportNoLogs":    "No logs found to generate a report.",
		"reportFailed":    "Failed to generate report.",
		"reportError":     "Error connecting to AI service. Please check your network or API Key.",
		"generating":      "Generating...",
		"noSearchResults": "No matching logs.",
	},
	Chinese: {
		"today":           "今天",
		"yesterday":       "昨天",
		"noLogs":          "暂无记录",
		"startTyping":     "在下方输入以开始记录。",
		"placeholder":     "在做什么？",
		"noLogsFound":     "无记录",
		"copied":          "已复制",
		"importSuccess":   "已导入 %d 条记录。",
		"importError":     "粘贴的文本中没有找到有效记录。",
		"reportNoKey":     "未设置 API Key",
		"reportNoLogs":    "没有找到记录。",
		"reportFailed":    "生成失败。",
		"reportError":     "连接 AI 服务出错，请检查网络或 API Key。",
		"generating":      "生成中...",
		"noSearchResults": "没有匹配的记录。",
	},
}

// T returns the translation for key in the given language.
// Unknown keys are returned verbatim.
func T(lang Language, key string) string {
	if s, ok := translations[ParseLanguage(string(lang))][key]; ok {
		return s
	}
	return key
}

var zhWeekdays = [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// FormatDate renders the local calendar date of t in the language's
// short date convention.
func FormatDate(t time.Time, lang Language) string {
	t = t.Local()
	if ParseLanguage(string(lang)) == Chinese {
		return t.Format("2006/01/02")
	}
	return t.Format("01/02/2006")
}

// FormatTime renders the local wall-clock time of t at minute precision,
// 12-hour for English and 24-hour for Chinese.
func FormatTime(t time.Time, lang Language) string {
	t = t.Local()
	if ParseLanguage(string(lang)) == Chinese {
		return t.Format("15:04")
	}
	return t.Format("03:04 PM")
}

// FormatWeekdayDate renders the local calendar date with its weekday, used
// for timeline bucket labels and grouped-export headings.
func FormatWeekdayDate(t time.Time, lang Language) string {
	t = t.Local()
	if ParseLanguage(string(lang)) == Chinese {
		return t.Format("2006年1月2日") + " " + zhWeekdays[int(t.Weekday())]
	}
	return t.Format("Mon, Jan 2, 2006")
}
