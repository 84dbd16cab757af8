package webutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"csgobeans/internal/model"
)

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(dst)
	if err != nil {
		return model.ErrInvalidInput
	}
	return nil
}

// ParsePagination はクエリパラメータから offset / limit を取り出します。
// 省略時は offset=0, limit=defaultLimit。limit は maxLimit で頭打ちにする
func ParsePagination(r *http.Request, defaultLimit, maxLimit int) (offset, limit int, err error) {
	limit = defaultLimit

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, model.NewAppError("INVALID_QUERY_PARAM", "offsetの形式が正しくありません。", "offset", model.ErrInvalidInput)
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return 0, 0, model.NewAppError("INVALID_QUERY_PARAM", "limitの形式が正しくありません。", "limit", model.ErrInvalidInput)
		}
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return offset, limit, nil
}
