package klog_test

import (
	"bytes"
	"testing"

	"github.com/aklitzke/algebra-kernel/internal/klog"
)

func TestFprintfRespectsEnabled(t *testing.T) {
	var buf bytes.Buffer
	klog.Fprintf(&buf, "pivot round %d\n", 3)
	if klog.Enabled() && buf.Len() == 0 {
		t.Fatalf("expected output when KERNEL_DEBUG=1")
	}
	if !klog.Enabled() && buf.Len() != 0 {
		t.Fatalf("expected no output when debug logging is disabled, got %q", buf.String())
	}
}
