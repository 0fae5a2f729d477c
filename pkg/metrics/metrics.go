// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// bdfNamespace 是当前项目所有 Prometheus 指标使用的命名空间。
	bdfNamespace = "bdf"

	codecSubsystem  = "codec"
	streamSubsystem = "stream"

	// directionLabelName 区分读方向与写方向。
	directionLabelName = "direction"

	DirectionRead  = "read"
	DirectionWrite = "write"
)

var (
	// StreamBytes 统计经过被观测流的总字节数，按读/写方向区分。
	StreamBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: bdfNamespace,
			Subsystem: streamSubsystem,
			Name:      "bytes_total",
			Help:      "total bytes moved through metered streams",
		}, []string{directionLabelName})

	// StreamErrors 统计被观测流上发生的读写失败次数。
	StreamErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: bdfNamespace,
			Subsystem: streamSubsystem,
			Name:      "errors_total",
			Help:      "total read/write failures on metered streams",
		}, []string{directionLabelName})

	// CodecValues 统计序列化器成功编码/解码的顶层值数量。
	CodecValues = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: bdfNamespace,
			Subsystem: codecSubsystem,
			Name:      "values_total",
			Help:      "total values encoded and decoded",
		}, []string{directionLabelName})

	metricRegisterer prometheus.Registerer
)

// GetRegisterer 返回全局 Prometheus Registerer。
// 如果尚未通过 Register 显式设置，则返回 prometheus.DefaultRegisterer。
func GetRegisterer() prometheus.Registerer {
	if metricRegisterer == nil {
		return prometheus.DefaultRegisterer
	}
	return metricRegisterer
}

// Register 注册当前定义的所有指标。
// 通常应在 init 函数中调用。
func Register(r prometheus.Registerer) {
	r.MustRegister(StreamBytes)
	r.MustRegister(StreamErrors)
	r.MustRegister(CodecValues)
	metricRegisterer = r
}
