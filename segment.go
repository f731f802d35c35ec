package fundholdings

// Static classification tables. These are configuration data: initialized
// once, never mutated at runtime.

// DefaultSegment is the market-segment label for instrument codes whose
// prefix is not in the segment table.
const DefaultSegment = "其他"

// segments maps a 3-character instrument-code prefix to its market-listing segment.
var segments = map[string]string{
	"688": "科创板",
	"300": "创业板",
	"002": "中小板",
	"000": "主板",
	"600": "主板",
	"601": "主板",
	"603": "主板",
	"605": "主板",
	"005": "主板",
	"006": "主板",
}

// SegmentOf classifies an instrument code into a market-listing segment by
// its first three characters. Unknown prefixes fall back to DefaultSegment.
func SegmentOf(code string) string {
	if len(code) < 3 {
		return DefaultSegment
	}
	if s, ok := segments[code[:3]]; ok {
		return s
	}
	return DefaultSegment
}

// DefaultIndustry is the label for instrument codes absent from the industry table.
const DefaultIndustry = "未知"

// industries maps full instrument codes to a first-level industry.
// The table is a curated sample and grows with the funds under analysis.
var industries = map[string]string{
	"600519": "食品饮料", // 贵州茅台
	"300750": "电力设备", // 宁德时代
	"601318": "非银金融", // 中国平安
	"000858": "食品饮料", // 五粮液
	"000333": "家用电器", // 美的集团
	"002594": "汽车",   // 比亚迪
	"601166": "银行",   // 兴业银行
}

// IndustryOf returns the first-level industry of an instrument code, or
// DefaultIndustry when the code is not in the table.
func IndustryOf(code string) string {
	if s, ok := industries[code]; ok {
		return s
	}
	return DefaultIndustry
}

// DefaultTheme is the label for instrument codes absent from the theme table.
const DefaultTheme = "无特定主题"

// themes maps full instrument codes to a market theme.
var themes = map[string]string{
	"600519": "消费",   // 贵州茅台
	"300750": "新能源",  // 宁德时代
	"002594": "新能源",  // 比亚迪
	"000333": "智能家居", // 美的集团
}

// ThemeOf returns the market theme of an instrument code, or DefaultTheme
// when the code is not in the table.
func ThemeOf(code string) string {
	if s, ok := themes[code]; ok {
		return s
	}
	return DefaultTheme
}
