package mirror

import (
	"reflect"
	"testing"
)

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "default push",
			opts: Options{Archive: true, Compress: true, Update: true},
			want: []string{"-a", "-z", "--update", "--human-readable", "--mkpath", "src", "dst"},
		},
		{
			name: "force omits update",
			opts: Options{Archive: true, Compress: true},
			want: []string{"-a", "-z", "--human-readable", "--mkpath", "src", "dst"},
		},
		{
			name: "directory mirror deletes extras",
			opts: Options{Archive: true, Compress: true, Update: true, Delete: true},
			want: []string{"-a", "-z", "--update", "--delete", "--human-readable", "--mkpath", "src", "dst"},
		},
		{
			name: "verbose dry run",
			opts: Options{Archive: true, Compress: true, Verbose: true, DryRun: true},
			want: []string{"-a", "-z", "-v", "--dry-run", "--human-readable", "--mkpath", "src", "dst"},
		},
		{
			name: "extra options before paths",
			opts: Options{Archive: true, Extra: []string{"--bwlimit=1000"}},
			want: []string{"-a", "--human-readable", "--mkpath", "--bwlimit=1000", "src", "dst"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Args("src", "dst", tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Args = %v, want %v", got, tt.want)
			}
		})
	}
}
