package httpserver

import "strconv"

func idKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
