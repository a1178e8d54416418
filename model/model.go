package model

// Vectorizer 是内容向量化的最小抽象：输入一段文本，输出一个稀疏向量。
// 具体实现可以是本地向量空间（TF-IDF）或远程 embedding 服务。
type Vectorizer interface {
	Name() string
	Vectorize(text string) map[string]float64
}

// CosineSimilarity 计算两个稀疏向量的余弦相似度。
// 任一向量为零向量时返回 0。
func CosineSimilarity(a, b map[string]float64) float64 {
	dot := DotProduct(a, b)
	if dot == 0 {
		return 0
	}
	normA := l2Norm(a)
	normB := l2Norm(b)
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (normA * normB)
}

// DotProduct 计算两个稀疏向量的点积。
// 对已 L2 归一化的向量，点积即余弦相似度。
func DotProduct(a, b map[string]float64) float64 {
	// 只遍历较小的向量即可得到点积
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	var dot float64
	for k, va := range small {
		if vb, ok := large[k]; ok {
			dot += va * vb
		}
	}
	return dot
}
