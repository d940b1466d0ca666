package memory_test

import (
	"testing"

	"github.com/blotterhq/blotter/pkg/adapters/memory"
	"github.com/blotterhq/blotter/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunArchiveStoreContract(t, memory.NewStore())
}
