package compile

import (
	"fmt"
	"os"
	"runtime"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// 通过 -ldflags "-X github.com/play/landlord/pkg/compile.Version=..." 注入
var (
	Name     = "ddzjudge" // 项目名
	Hostname = ""

	Version   = "dev"
	GoVersion = runtime.Version()
	GoOs      = runtime.GOOS
	GoArch    = runtime.GOARCH
	GitCommit = ""
	BuildTime = ""
)

func init() {
	Hostname, _ = os.Hostname()
}

// BuildInfo 构建信息
type BuildInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Os        string `json:"os"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	Hostname  string `json:"hostname,omitempty"`
}

func Os() string {
	return fmt.Sprintf("%s/%s", GoOs, GoArch)
}

// Info 返回当前的构建信息
func Info() BuildInfo {
	return BuildInfo{
		Name:      Name,
		Version:   Version,
		GoVersion: GoVersion,
		Os:        Os(),
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		Hostname:  Hostname,
	}
}

// JSON 构建信息的 json 表示
func JSON() []byte {
	data, _ := json.Marshal(Info())
	return data
}

func Log() {
	log.Info().Str("name", Name).Str("version", Version).Str("go_version", GoVersion).Str("os", Os()).Str("commit", GitCommit).Str("build_time", BuildTime).Msg("build info")
}
