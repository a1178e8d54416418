package scorer

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rushteam/menukit/core"
	"github.com/rushteam/menukit/model"
	"github.com/rushteam/menukit/pipeline"
)

// similarityReason 是相似策略的固定推荐理由。
const similarityReason = "similar to items you've enjoyed"

// Similarity 是内容相似策略：把顾客买过的菜品当作口味锚点，
// 推荐内容上接近、但还没买过的菜品。
//
// 核心思想："喜欢浓缩咖啡的人，大概率也会喜欢美式"
//   - 每个菜品由 MenuItem.Document()（品类+子品类+配料）生成文档
//   - 全目录在同一向量空间中向量化（默认 TF-IDF，可注入其他 Vectorizer）
//   - 对每个已购菜品与全目录算余弦相似度，已购菜品本身被排除
//   - 同一候选被多个已购菜品命中时取最大相似度
//   - 按相似度降序，平分按目录顺序，取 TopK
//
// 向量空间按目录指纹缓存：目录快照不变时跨请求复用，变化时重建。
// 缓存读写由 RWMutex 保护，Score 可被并发调用。
type Similarity struct {
	// TopK 返回 TopK 个候选，0 表示使用默认值
	TopK int

	// Vectorizer 自定义向量化器；为空时按目录构建 TF-IDF 空间
	Vectorizer model.Vectorizer

	mu          sync.RWMutex
	fingerprint uint64
	vectors     map[string]map[string]float64 // itemID -> 归一化向量
}

var (
	_ Scorer        = (*Similarity)(nil)
	_ pipeline.Node = (*Similarity)(nil)
)

func (s *Similarity) Name() string        { return "score.similarity" }
func (s *Similarity) Kind() pipeline.Kind { return pipeline.KindScore }

// Process 实现 Node 接口，忽略输入直接产出候选。
func (s *Similarity) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	return s.Score(ctx, rctx)
}

func (s *Similarity) Score(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Candidate, error) {
	if rctx == nil || len(rctx.Catalog) == 0 {
		return nil, nil
	}
	owned := rctx.OwnedSet()
	if len(owned) == 0 {
		return nil, nil
	}

	vectors := s.catalogVectors(rctx.Catalog)

	// 每个候选取它与任一已购菜品的最大相似度
	best := make(map[string]float64)
	for _, anchor := range rctx.Catalog {
		if anchor == nil || !owned[anchor.ID] {
			continue
		}
		anchorVec := vectors[anchor.ID]
		if len(anchorVec) == 0 {
			continue
		}
		for _, item := range rctx.Catalog {
			if item == nil || owned[item.ID] {
				continue
			}
			sim := model.CosineSimilarity(anchorVec, vectors[item.ID])
			if sim > best[item.ID] {
				best[item.ID] = sim
			}
		}
	}
	if len(best) == 0 {
		return nil, nil
	}

	// 沿目录顺序收集，零相似度的候选没有信息量，直接丢弃
	out := make([]*core.Candidate, 0, len(best))
	for _, item := range rctx.Catalog {
		if item == nil {
			continue
		}
		sim, ok := best[item.ID]
		if !ok || sim <= 0 {
			continue
		}
		c := core.NewCandidate(item)
		c.Score = sim
		c.AddReason(similarityReason)
		c.AddStrategy(core.StrategySimilarity)
		c.Features["raw_"+core.StrategySimilarity] = sim
		out = append(out, c)
	}

	sortByScoreDesc(out)

	topK := s.TopK
	if topK <= 0 {
		topK = defaultTopK()
	}
	return truncate(out, topK), nil
}

// catalogVectors 返回目录快照的向量表：指纹命中时复用缓存，否则重建。
func (s *Similarity) catalogVectors(catalog []*core.MenuItem) map[string]map[string]float64 {
	fp := catalogFingerprint(catalog)

	s.mu.RLock()
	if s.vectors != nil && s.fingerprint == fp {
		vectors := s.vectors
		s.mu.RUnlock()
		return vectors
	}
	s.mu.RUnlock()

	vectors := s.buildVectors(catalog)

	s.mu.Lock()
	s.fingerprint = fp
	s.vectors = vectors
	s.mu.Unlock()
	return vectors
}

func (s *Similarity) buildVectors(catalog []*core.MenuItem) map[string]map[string]float64 {
	vectorizer := s.Vectorizer
	if vectorizer == nil {
		docs := make([]string, 0, len(catalog))
		for _, item := range catalog {
			if item == nil {
				continue
			}
			docs = append(docs, item.Document())
		}
		vectorizer = model.NewTFIDFSpace(docs)
	}

	vectors := make(map[string]map[string]float64, len(catalog))
	for _, item := range catalog {
		if item == nil {
			continue
		}
		vectors[item.ID] = vectorizer.Vectorize(item.Document())
	}
	return vectors
}

// catalogFingerprint 计算目录快照的指纹：ID 与文档内容任一变化都会改变指纹。
func catalogFingerprint(catalog []*core.MenuItem) uint64 {
	h := fnv.New64a()
	for _, item := range catalog {
		if item == nil {
			continue
		}
		h.Write([]byte(item.ID))
		h.Write([]byte{0})
		h.Write([]byte(item.Document()))
		h.Write([]byte{'\n'})
	}
	return h.Sum64()
}
