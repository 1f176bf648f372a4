package service

import (
	"fmt"
	"hash/fnv"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// NewUserID derives an anonymous identifier from a few host properties plus
// the current time. It is generated once and persisted with the state;
// collision resistance is not load-bearing.
func NewUserID() string {
	host, _ := os.Hostname()

	h := fnv.New32a()
	h.Write([]byte(strings.Join([]string{host, runtime.GOOS, runtime.GOARCH}, "|")))

	return fmt.Sprintf("user_%s_%s",
		strconv.FormatUint(uint64(h.Sum32()), 36),
		strconv.FormatInt(time.Now().UnixMilli(), 36))
}
