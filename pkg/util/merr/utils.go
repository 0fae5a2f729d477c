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

package merr

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

const InputErrorFlagKey string = "is_input_error"

// Code 返回给定错误对应的错误码。
func Code(err error) int32 {
	if err == nil {
		return 0
	}

	cause := errors.Cause(err)
	switch specificErr := cause.(type) {
	case zeusError:
		return specificErr.code()

	default:
		if errors.Is(specificErr, context.Canceled) {
			return CanceledCode
		} else if errors.Is(specificErr, context.DeadlineExceeded) {
			return TimeoutCode
		} else {
			return errUnexpected.code()
		}
	}
}

func IsRetryableErr(err error) bool {
	if err, ok := err.(zeusError); ok {
		return err.retriable
	}

	return false
}

func IsCanceledOrTimeout(err error) bool {
	return errors.IsAny(err, context.Canceled, context.DeadlineExceeded)
}

func WrapErrAsInputError(err error) error {
	if merr, ok := err.(zeusError); ok {
		WithErrorType(InputError)(&merr)
		return merr
	}
	return err
}

func GetErrorType(err error) ErrorType {
	if merr, ok := err.(zeusError); ok {
		return merr.errType
	}

	return SystemError
}

// Stream 相关错误封装。
func WrapErrStreamShortRead(cause error, want, got int) error {
	err := wrapFields(ErrStreamShortRead,
		value("want", want),
		value("got", got),
	)
	if cause != nil {
		err = errors.Wrap(err, cause.Error())
	}
	return err
}

func WrapErrStreamShortWrite(cause error, want, got int) error {
	err := wrapFields(ErrStreamShortWrite,
		value("want", want),
		value("got", got),
	)
	if cause != nil {
		err = errors.Wrap(err, cause.Error())
	}
	return err
}

func WrapErrStreamNotReadable(msg ...string) error {
	err := error(ErrStreamNotReadable)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrStreamNotWritable(msg ...string) error {
	err := error(ErrStreamNotWritable)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// Codec 构造期相关错误封装。
func WrapErrCodecInvalidByteOrder(order any) error {
	return wrapFields(ErrCodecInvalidByteOrder, value("order", order))
}

func WrapErrCodecUnsupportedWidth(width int) error {
	return wrapFieldsWithDesc(ErrCodecUnsupportedWidth,
		"supported widths are 1, 2, 4 and 8 bytes",
		value("width", width),
	)
}

func WrapErrCodecNilStream(msg ...string) error {
	err := error(ErrCodecNilStream)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// Codec 解码期相关错误封装。
func WrapErrCodecLengthOverflow(declared uint64, limit int) error {
	return wrapFields(ErrCodecLengthOverflow,
		bound("length", declared, 0, limit),
	)
}

func WrapErrCodecBufferTooSmall(need, capacity int) error {
	return wrapFields(ErrCodecBufferTooSmall,
		value("need", need),
		value("capacity", capacity),
	)
}

func WrapErrCodecTruncatedInput(cause error, shape string) error {
	err := wrapFields(ErrCodecTruncatedInput, value("shape", shape))
	if cause != nil {
		err = errors.Wrap(err, cause.Error())
	}
	return err
}

func wrapFields(err zeusError, fields ...errorField) error {
	for i := range fields {
		err.msg += fmt.Sprintf("[%s]", fields[i].String())
	}
	err.detail = err.msg
	return err
}

func wrapFieldsWithDesc(err zeusError, desc string, fields ...errorField) error {
	for i := range fields {
		err.msg += fmt.Sprintf("[%s]", fields[i].String())
	}
	err.msg += ": " + desc
	err.detail = err.msg
	return err
}

type errorField interface {
	String() string
}

type valueField struct {
	name  string
	value any
}

func value(name string, value any) valueField {
	return valueField{
		name,
		value,
	}
}

func (f valueField) String() string {
	return fmt.Sprintf("%s=%v", f.name, f.value)
}

type boundField struct {
	name  string
	value any
	lower any
	upper any
}

func bound(name string, value, lower, upper any) boundField {
	return boundField{
		name,
		value,
		lower,
		upper,
	}
}

func (f boundField) String() string {
	return fmt.Sprintf("%v out of range %v <= %s <= %v", f.value, f.lower, f.name, f.upper)
}
