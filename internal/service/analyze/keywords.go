// Package analyze counts how many documents of the harvested corpus mention
// each technology keyword.
package analyze

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Keyword 一个待统计的技术关键词
type Keyword struct {
	Name string
	// 统计时归并到的名称,为空时使用Name
	Canonical string
	// 按字面子串匹配,不要求单词边界
	Literal bool
}

func (k Keyword) canonical() string {
	if k.Canonical != "" {
		return k.Canonical
	}
	return k.Name
}

var DefaultKeywords = []Keyword{
	{Name: "Python"}, {Name: "Java"}, {Name: "Go"}, {Name: "Golang", Canonical: "Go"},
	{Name: "C++", Literal: true}, {Name: "C#", Literal: true}, {Name: "Rust"},
	{Name: "JavaScript"}, {Name: "TypeScript"},
	{Name: "React"}, {Name: "Vue"}, {Name: "Angular"}, {Name: "Node"},
	{Name: "Spring"}, {Name: "Django"}, {Name: "Flask"}, {Name: "Gin"},
	{Name: "Kotlin"}, {Name: "Swift"}, {Name: "Objective-C"}, {Name: "Flutter"},
	{Name: "MySQL"}, {Name: "PostgreSQL"}, {Name: "MongoDB"}, {Name: "Redis"},
	{Name: "Elasticsearch"}, {Name: "Kafka"}, {Name: "RocketMQ"},
	{Name: "Docker"}, {Name: "Kubernetes"}, {Name: "K8s"}, {Name: "Linux"}, {Name: "Git"}, {Name: "CI/CD"},
	{Name: "Spark"}, {Name: "Hadoop"}, {Name: "Flink"}, {Name: "Hive"},
	{Name: "PyTorch"}, {Name: "TensorFlow"}, {Name: "Keras"},
	{Name: "LLM"}, {Name: "NLP"}, {Name: "CV"}, {Name: "Multimodal"},
}

// matcher 在已转小写的文本上判断是否出现
type matcher struct {
	canonical string
	match     func(lower string) bool
}

func compile(k Keyword) (matcher, error) {
	name := strings.ToLower(k.Name)
	if name == "" {
		return matcher{}, errors.New("关键词不能为空")
	}
	if k.Literal {
		return matcher{
			canonical: k.canonical(),
			match:     func(lower string) bool { return strings.Contains(lower, name) },
		}, nil
	}
	// \b只识别ASCII单词字符,中文紧挨着关键词也算边界
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(name) + `\b`)
	if err != nil {
		return matcher{}, fmt.Errorf("关键词 %s 无法编译: %w", k.Name, err)
	}
	return matcher{canonical: k.canonical(), match: re.MatchString}, nil
}
