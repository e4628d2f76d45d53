package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func Validate(i interface{}) error {
	return validate.Struct(i)
}

func FormatValidationError(errs validator.ValidationErrors) string {
	// 定义错误信息映射
	msgMap := map[string]string{
		"required": "不能为空",
		"min":      "长度不能小于%v",
		"max":      "长度不能大于%v",
		"email":    "必须是有效的邮箱地址",
		"url":      "必须是有效的网址",
		"oneof":    "必须是[%v]中的一个",
		"gt":       "必须大于%v",
		"gte":      "必须大于等于%v",
	}

	// 字段名称映射（将英文字段名转换为中文）
	fieldMap := map[string]string{
		"Content":       "评论内容",
		"PostID":        "文章ID",
		"AuthorName":    "昵称",
		"AuthorEmail":   "邮箱",
		"AuthorWebsite": "网址",
		"ReactionType":  "反应类型",
		"Status":        "状态",
		"Page":          "页码",
		"PageSize":      "每页大小",
	}

	// 通常只返回第一个错误
	firstErr := errs[0]

	fieldName := fieldMap[firstErr.Field()]
	if fieldName == "" {
		fieldName = firstErr.Field()
	}

	msgTemplate := msgMap[firstErr.Tag()]
	if msgTemplate == "" {
		msgTemplate = "验证失败"
	}

	if firstErr.Param() != "" {
		return fieldName + fmt.Sprintf(msgTemplate, firstErr.Param())
	}

	return fieldName + msgTemplate
}
