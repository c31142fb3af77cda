package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrInvalidWindow       = errors.New("报表时间范围不合法")
	ErrAccountNotFound     = errors.New("IG 账号不存在")
	ErrAccountExist        = errors.New("IG 账号已存在")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrUserExist           = errors.New("用户已存在")
	ErrPasswordIncorrect   = errors.New("密码错误")
	ErrTokenExchangeFailed = errors.New("token 交换失败")
	ErrCollectorBusy       = errors.New("采集任务正在执行中")
	UnauthorizedError      = errors.New("权限不足")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrInvalidWindow:       BadRequest,
	ErrAccountNotFound:     NotFound,
	ErrAccountExist:        BadRequest,
	ErrUserNotFound:        NotFound,
	ErrUserExist:           BadRequest,
	ErrPasswordIncorrect:   Unauthorized,
	ErrTokenExchangeFailed: BadRequest,
	ErrCollectorBusy:       BadRequest,
	UnauthorizedError:      Unauthorized,
	UnExpectedError:        InternalServerError,
}
