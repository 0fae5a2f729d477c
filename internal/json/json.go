package json

import (
	"github.com/bytedance/sonic"
)

var json = sonic.ConfigStd

// 统一的 JSON 出入口，底层使用 bytedance/sonic 的标准兼容配置。
var (
	Marshal       = json.Marshal
	Unmarshal     = json.Unmarshal
	MarshalIndent = json.MarshalIndent
	NewDecoder    = json.NewDecoder
	NewEncoder    = json.NewEncoder
)
