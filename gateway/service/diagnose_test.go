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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnoser_Diagnose(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "trainer"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trainer", "train.log"), []byte(strings.Repeat("a", 100)+"tail of the log"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trainer", "notes.txt"), []byte("ignored"), 0644))

	report, err := NewDiagnoser(dir, 15).Diagnose(context.Background(), "why did training fail?")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(report, "Question: why did training fail?\n"))
	assert.Contains(t, report, "Host:\n")
	assert.Contains(t, report, "tail of the log")
	assert.NotContains(t, report, "aaaa")
	assert.NotContains(t, report, "ignored")
}

func TestDiagnoser_MissingLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	report, err := NewDiagnoser(dir, 1024).Diagnose(context.Background(), "")
	require.NoError(t, err)
	assert.Contains(t, report, DefaultDebugQuestion)
	assert.Contains(t, report, "No log files found")
}

func TestReadTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "core.log")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0644))

	tail, err := readTail(path, 4)
	require.NoError(t, err)
	assert.Equal(t, "6789", tail)

	tail, err = readTail(path, 100)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", tail)
}
