package model

import (
	"math"
	"strings"
	"unicode"
)

// TFIDFSpace 是基于 TF-IDF 的文本向量空间。
//
// 核心思想：
//   - 在一批文档（语料）上统计每个词的文档频率 df
//   - idf 采用平滑公式 ln((1+n)/(1+df)) + 1，保证权重恒为正
//   - 向量化时对词频加权 idf 并做 L2 归一化，
//     归一化后的向量之间点积即余弦相似度
//
// 使用场景：
//   - 菜单内容相似度：把每个菜品的类别、子类目、配料拼成文档，
//     在全量菜单上构建空间，再比较任意两个菜品的向量
//
// 工程特征：
//   - 实时性：好（空间构建 O(语料规模)，向量化 O(文档长度)）
//   - 计算复杂度：低（稀疏向量点积）
//   - 可解释性：强（每个维度就是一个词）
//
// 构建完成后空间只读，可被多个 goroutine 并发调用 Vectorize。
type TFIDFSpace struct {
	// idf 词 -> 逆文档频率
	idf map[string]float64

	// docCount 语料中的文档数
	docCount int
}

var _ Vectorizer = (*TFIDFSpace)(nil)

// NewTFIDFSpace 在给定语料上构建 TF-IDF 向量空间。
// 语料为空时返回一个空空间，Vectorize 恒返回空向量。
func NewTFIDFSpace(docs []string) *TFIDFSpace {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range Tokenize(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	n := len(docs)
	idf := make(map[string]float64, len(df))
	for term, freq := range df {
		idf[term] = math.Log(float64(1+n)/float64(1+freq)) + 1
	}

	return &TFIDFSpace{
		idf:      idf,
		docCount: n,
	}
}

func (s *TFIDFSpace) Name() string {
	return "tfidf"
}

// VocabSize 返回空间中的词数。
func (s *TFIDFSpace) VocabSize() int {
	return len(s.idf)
}

// DocCount 返回构建空间时的文档数。
func (s *TFIDFSpace) DocCount() int {
	return s.docCount
}

// Vectorize 将一段文本编码为 L2 归一化的 TF-IDF 稀疏向量。
// 未登录词会被忽略；文本无有效词时返回空向量。
func (s *TFIDFSpace) Vectorize(text string) map[string]float64 {
	terms := Tokenize(text)
	if len(terms) == 0 {
		return map[string]float64{}
	}

	// 词频 × idf
	vec := make(map[string]float64)
	for _, term := range terms {
		idf, ok := s.idf[term]
		if !ok {
			continue
		}
		vec[term] += idf
	}

	// L2 归一化
	norm := l2Norm(vec)
	if norm == 0 {
		return map[string]float64{}
	}
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}

// Tokenize 把文本切分为词列表：小写化、按非字母数字切分、
// 过滤单字符词与停用词。
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if len([]rune(w)) < 2 {
			continue
		}
		if IsStopword(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// l2Norm 计算稀疏向量的 L2 范数。
func l2Norm(vec map[string]float64) float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	return math.Sqrt(sum)
}
