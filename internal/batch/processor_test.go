package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []WordEntry
		wantErr     string
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "equals format",
			fileContent: `мама = 1
счастье = 2
молоко = 3`,
			want: []WordEntry{
				{Word: "мама", Stress: 1, Line: 1},
				{Word: "счастье", Stress: 2, Line: 2},
				{Word: "молоко", Stress: 3, Line: 3},
			},
		},
		{
			name: "mixed format",
			fileContent: `мама 1
счастье = 2
дуб	1`,
			want: []WordEntry{
				{Word: "мама", Stress: 1, Line: 1},
				{Word: "счастье", Stress: 2, Line: 2},
				{Word: "дуб", Stress: 1, Line: 3},
			},
		},
		{
			name: "comments and blank lines",
			fileContent: `# words from lesson 3

мама = 1
  # indented comment
   касса=2
`,
			want: []WordEntry{
				{Word: "мама", Stress: 1, Line: 3},
				{Word: "касса", Stress: 2, Line: 5},
			},
		},
		{
			name:        "windows line endings",
			fileContent: "мама = 1\r\nдуб 1\r\n",
			want: []WordEntry{
				{Word: "мама", Stress: 1, Line: 1},
				{Word: "дуб", Stress: 1, Line: 2},
			},
		},
		{
			name:        "stress is not validated against the word",
			fileContent: "мама = 7",
			want: []WordEntry{
				{Word: "мама", Stress: 7, Line: 1},
			},
		},
		{
			name:        "missing stress",
			fileContent: "мама = 1\nпривет",
			wantErr:     "line 2",
		},
		{
			name:        "non-numeric stress",
			fileContent: "мама = первый",
			wantErr:     "invalid stress",
		},
		{
			name:        "missing word",
			fileContent: "= 2",
			wantErr:     "missing word",
		},
		{
			name:        "too many fields",
			fileContent: "мама мыла 1",
			wantErr:     "expected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "words.txt")
			if err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadBatchFile(tmpFile)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ReadBatchFile() expected error containing %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("ReadBatchFile() error = %v, want error containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadBatchFile() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_FileNotFound(t *testing.T) {
	_, err := ReadBatchFile("/nonexistent/file.txt")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}
