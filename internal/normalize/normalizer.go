// Package normalize maps raw posting records onto the fixed document schema.
package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/LouYuanbo1/campusjobs/internal/domain/entity"
	"github.com/LouYuanbo1/campusjobs/internal/domain/model"
	"github.com/LouYuanbo1/campusjobs/internal/textproc/htmltext"
	"github.com/LouYuanbo1/campusjobs/internal/textproc/sections"
)

const Unknown = "Unknown"

var ErrMissingID = errors.New("岗位记录缺少id")

// Normalizer 纯函数式的记录转换,不做任何I/O
type Normalizer struct {
	conv htmltext.Converter
}

func NewNormalizer(conv htmltext.Converter) *Normalizer {
	return &Normalizer{conv: conv}
}

// NormalizeRaw 解析并转换单条api记录
func (n *Normalizer) NormalizeRaw(raw json.RawMessage) (*model.PostingDoc, error) {
	job, err := entity.DecodeRawJob(raw)
	if err != nil {
		return nil, err
	}
	return n.Normalize(job)
}

func (n *Normalizer) Normalize(job *entity.RawJob) (*model.PostingDoc, error) {
	if job.ID == "" {
		return nil, ErrMissingID
	}

	description, err := n.conv.Convert(job.Description)
	if err != nil {
		return nil, fmt.Errorf("转换职位描述失败 (id: %s): %w", job.ID, err)
	}
	requirement, err := n.conv.Convert(job.Requirement)
	if err != nil {
		return nil, fmt.Errorf("转换职位要求失败 (id: %s): %w", job.ID, err)
	}
	parts := sections.Extract(description)

	return &model.PostingDoc{
		ID:               string(job.ID),
		Code:             stringOr(job.Code, Unknown),
		Title:            stringOr(job.Title, Unknown),
		Location:         resolveLocation(job),
		Category:         resolveCategory(job),
		RecruitType:      job.RecruitType.NameOr(Unknown),
		TeamIntro:        parts.TeamIntro,
		DailyRequirement: parts.DailyRequirement,
		CoreWork:         parts.CoreWork,
		Requirement:      requirement,
	}, nil
}

// 优先使用city_list,其次city_info
func resolveLocation(job *entity.RawJob) string {
	if len(job.CityList) > 0 {
		names := make([]string, 0, len(job.CityList))
		for i := range job.CityList {
			if name := job.CityList[i].NameOr(""); name != "" {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			return strings.Join(names, ", ")
		}
		return Unknown
	}
	return job.CityInfo.NameOr(Unknown)
}

func resolveCategory(job *entity.RawJob) string {
	if job.JobCategory == nil {
		return Unknown
	}
	category := job.JobCategory.NameOr(Unknown)
	if sub := job.SubJobCategory.NameOr(""); sub != "" {
		return category + " - " + sub
	}
	return category
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	if v := strings.TrimSpace(*s); v != "" {
		return v
	}
	return fallback
}
