/*
 *     Copyright 2024 The Mltemplate Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package service

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	fqdn "github.com/Showmax/go-fqdn"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	logger "github.com/mltemplate/mltemplate/internal/mllog"
)

// DefaultDebugQuestion is answered when a debug request carries no text.
const DefaultDebugQuestion = "Please help me debug the most recent command I ran."

// Diagnoser reports the state of the host and the recent service logs.
type Diagnoser interface {
	Diagnose(context.Context, string) (string, error)
}

type diagnoser struct {
	logDir   string
	tailSize int64
}

// NewDiagnoser returns a diagnoser reading logs below logDir.
func NewDiagnoser(logDir string, tailSize int64) Diagnoser {
	return &diagnoser{
		logDir:   logDir,
		tailSize: tailSize,
	}
}

func (d *diagnoser) Diagnose(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		question = DefaultDebugQuestion
	}

	logFiles, err := d.logFiles()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\n", question)
	b.WriteString(d.hostReport(ctx))

	if len(logFiles) == 0 {
		fmt.Fprintf(&b, "\nNo log files found in %s.\n", d.logDir)
		return b.String(), nil
	}

	fmt.Fprintf(&b, "\nLog files: %s\n", strings.Join(logFiles, ", "))
	for _, logFile := range logFiles {
		tail, err := readTail(logFile, d.tailSize)
		if err != nil {
			logger.Warnf("read log file %s failed: %s", logFile, err.Error())
			continue
		}

		fmt.Fprintf(&b, "\n==> %s <==\n%s", logFile, tail)
		if !strings.HasSuffix(tail, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

// logFiles returns the log files below the log directory in lexical order.
func (d *diagnoser) logFiles() ([]string, error) {
	var files []string
	err := filepath.WalkDir(d.logDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return filepath.SkipDir
			}

			return err
		}

		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".log") {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func (d *diagnoser) hostReport(ctx context.Context) string {
	var b strings.Builder
	b.WriteString("Host:\n")

	hostname, err := fqdn.FqdnHostname()
	if err != nil {
		hostname, _ = os.Hostname()
	}
	fmt.Fprintf(&b, "  fqdn: %s\n", hostname)

	if info, err := host.InfoWithContext(ctx); err == nil {
		fmt.Fprintf(&b, "  os: %s %s %s, kernel %s, uptime %ds\n", info.OS, info.Platform, info.PlatformVersion, info.KernelVersion, info.Uptime)
	}

	if avg, err := load.AvgWithContext(ctx); err == nil {
		fmt.Fprintf(&b, "  load: %.2f %.2f %.2f\n", avg.Load1, avg.Load5, avg.Load15)
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		fmt.Fprintf(&b, "  memory: %d/%d bytes used (%.1f%%)\n", vm.Used, vm.Total, vm.UsedPercent)
	}

	if p, err := process.NewProcessWithContext(ctx, int32(os.Getpid())); err == nil {
		if info, err := p.MemoryInfoWithContext(ctx); err == nil {
			fmt.Fprintf(&b, "  gateway rss: %d bytes, goroutines: %d\n", info.RSS, runtime.NumGoroutine())
		}
	}

	return b.String()
}

// readTail returns at most size bytes from the end of the file.
func readTail(path string, size int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	offset := info.Size() - size
	if offset < 0 {
		offset = 0
	}

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return "", err
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
