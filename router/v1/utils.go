package v1

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/traPtitech/avatars/service/imaging"
)

// isTrue 文字列sが"1", "t", "T", "true", "TRUE", "True"の場合にtrueを返す
func isTrue(s string) (b bool) {
	b, _ = strconv.ParseBool(s)
	return
}

// sizeRule 空または(0, max]の数値であることを検査します。"px"の接尾辞を許します
func sizeRule(limit int) func(value interface{}) error {
	return func(value interface{}) error {
		s, _ := value.(string)
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "px")), 64)
		if err != nil {
			return errors.New("must be a number")
		}
		if !(f > 0) {
			return errors.New("must be greater than 0")
		}
		if limit > 0 && f > float64(limit) {
			return fmt.Errorf("must be no greater than %d", limit)
		}
		return nil
	}
}

func formatRule(value interface{}) error {
	s, _ := value.(string)
	if _, ok := imaging.ParseFormat(s); !ok {
		return errors.New("must be one of svg, png, webp")
	}
	return nil
}
