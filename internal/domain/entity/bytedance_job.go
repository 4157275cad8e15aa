package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// JobID 岗位id,接口里既可能是字符串也可能是数字
type JobID string

func (id *JobID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = JobID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("无法解析岗位id %s: %w", data, err)
	}
	*id = JobID(n.String())
	return nil
}

// NamedRef 城市、职位类别、招聘类型等只关心name的嵌套对象
type NamedRef struct {
	Name *string `json:"name"`
}

// NameOr 返回去掉首尾空白的name,缺失或为空时返回fallback
func (r *NamedRef) NameOr(fallback string) string {
	if r == nil || r.Name == nil {
		return fallback
	}
	name := strings.TrimSpace(*r.Name)
	if name == "" {
		return fallback
	}
	return name
}

// RawJob 岗位api返回的单条原始记录,所有可选字段都显式建模
type RawJob struct {
	ID             JobID      `json:"id"`
	Code           *string    `json:"code"`
	Title          *string    `json:"title"`
	Description    string     `json:"description"`
	Requirement    string     `json:"requirement"`
	CityList       []NamedRef `json:"city_list"`
	CityInfo       *NamedRef  `json:"city_info"`
	JobCategory    *NamedRef  `json:"job_category"`
	SubJobCategory *NamedRef  `json:"sub_job_category"`
	RecruitType    *NamedRef  `json:"recruit_type"`
}

// DecodeRawJob 解析单条记录,失败只影响这一条
func DecodeRawJob(raw json.RawMessage) (*RawJob, error) {
	var job RawJob
	if err := json.Unmarshal(raw, &job); err != nil {
		return nil, fmt.Errorf("解析岗位记录失败: %w", err)
	}
	return &job, nil
}

// JobPage 一页api响应中与分页相关的部分
type JobPage struct {
	Items []json.RawMessage
	// 本页响应中报告的岗位总数,缺失时为nil
	Count *int
}

type jobListResponse struct {
	Data json.RawMessage `json:"data"`
}

type jobListData struct {
	Items       []json.RawMessage `json:"items"`
	JobPostList []json.RawMessage `json:"job_post_list"`
	Count       *int              `json:"count"`
}

// ParseJobPage 解析 {data: {items?, job_post_list?, count}} 结构的响应体.
// data不是对象时视为空页;响应体本身无法解析时返回错误.
func ParseJobPage(body []byte) (*JobPage, error) {
	var resp jobListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("JSON解析失败: %w", err)
	}
	data := bytes.TrimSpace(resp.Data)
	if len(data) == 0 || data[0] != '{' {
		return &JobPage{}, nil
	}
	var listData jobListData
	if err := json.Unmarshal(data, &listData); err != nil {
		return nil, fmt.Errorf("data字段解析失败: %w", err)
	}
	items := listData.Items
	if len(items) == 0 {
		items = listData.JobPostList
	}
	return &JobPage{Items: items, Count: listData.Count}, nil
}
