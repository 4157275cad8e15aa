package model

import (
	"bytes"
	"strings"

	"github.com/elastic/go-elasticsearch/v9/typedapi/types"
)

const PostingIndex = "campus_job_postings"

// PostingDoc 每个岗位最终落盘的文档
type PostingDoc struct {
	ID               string    `json:"id"`
	Code             string    `json:"code"`
	Title            string    `json:"title"`
	Location         string    `json:"location"`
	Category         string    `json:"category"`
	RecruitType      string    `json:"recruit_type"`
	TeamIntro        string    `json:"team_intro"`
	DailyRequirement string    `json:"daily_requirement"`
	CoreWork         string    `json:"core_work"`
	Requirement      string    `json:"requirement"`
	Embedding        []float32 `json:"embedding,omitempty"`
}

func (d *PostingDoc) GetID() string {
	return d.ID
}

func (d *PostingDoc) GetIndex() string {
	return PostingIndex
}

func (d *PostingDoc) GetTypeMapping() *types.TypeMapping {
	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"id":                types.NewKeywordProperty(),
			"code":              types.NewKeywordProperty(),
			"title":             types.NewTextProperty(),
			"location":          types.NewKeywordProperty(),
			"category":          types.NewKeywordProperty(),
			"recruit_type":      types.NewKeywordProperty(),
			"team_intro":        types.NewTextProperty(),
			"daily_requirement": types.NewTextProperty(),
			"core_work":         types.NewTextProperty(),
			"requirement":       types.NewTextProperty(),
			// 维度由第一条写入的向量决定
			"embedding": types.NewDenseVectorProperty(),
		},
	}
}

// GetEmbeddingString 用于生成向量的文本
func (d *PostingDoc) GetEmbeddingString() string {
	parts := []string{d.Title, d.Category, d.Location, d.TeamIntro, d.CoreWork, d.Requirement}
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n")
}

func (d *PostingDoc) SetEmbedding(embedding []float32) {
	d.Embedding = embedding
}

func (d *PostingDoc) GetEmbedding() []float32 {
	return d.Embedding
}

// Filename 文件名直接使用原始id,id空间被认为是文件系统安全的,这里不做转义
func (d *PostingDoc) Filename() string {
	return d.ID + ".md"
}

// Markdown 按固定顺序渲染落盘内容
func (d *PostingDoc) Markdown() []byte {
	var b bytes.Buffer
	b.WriteString("# " + d.Title + "\n\n")
	b.WriteString("**ID**: " + d.ID + "\n")
	b.WriteString("**Code**: " + d.Code + "\n")
	b.WriteString("**Location**: " + d.Location + "\n")
	b.WriteString("**Category**: " + d.Category + "\n")
	b.WriteString("**Type**: " + d.RecruitType + "\n\n")
	b.WriteString("## 职位描述\n\n")
	b.WriteString("### 团队介绍\n" + d.TeamIntro + "\n\n")
	b.WriteString("### 实习要求\n" + d.DailyRequirement + "\n\n")
	b.WriteString("### 核心工作\n" + d.CoreWork + "\n\n")
	b.WriteString("## 职位要求\n" + d.Requirement + "\n")
	return b.Bytes()
}
