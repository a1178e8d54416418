package model

// englishStopwords 是默认的英文停用词表。
// 菜单文档（类别、子类目、配料）以英文为主，构建向量空间时
// 过滤掉这些无区分度的功能词，避免它们稀释 idf 权重。
var englishStopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "for": {}, "from": {},
	"has": {}, "have": {}, "he": {}, "her": {}, "his": {},
	"if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"no": {}, "not": {}, "of": {}, "on": {}, "or": {},
	"she": {}, "so": {}, "such": {}, "that": {}, "the": {},
	"their": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "to": {}, "was": {}, "were": {}, "will": {},
	"with": {}, "you": {}, "your": {},
}

// IsStopword 判断一个词（已小写）是否为停用词。
func IsStopword(word string) bool {
	_, ok := englishStopwords[word]
	return ok
}
