package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"

	"github.com/custodia-labs/diffwatch/internal/core/domain"
	"github.com/custodia-labs/diffwatch/internal/core/ports/driven"
)

// Ensure Inspector implements the interface.
var _ driven.RepositoryInspector = (*Inspector)(nil)

const shortHashLen = 7

// Inspector reads repository metadata without shelling out.
type Inspector struct{}

// NewInspector creates a new repository inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect returns the current branch and abbreviated HEAD of the repository
// containing root. Parent directories are searched for the .git directory.
func (i *Inspector) Inspect(root string) (domain.RepositoryInfo, error) {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return domain.RepositoryInfo{}, fmt.Errorf("open repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return domain.RepositoryInfo{}, fmt.Errorf("resolve HEAD: %w", err)
	}

	info := domain.RepositoryInfo{Head: head.Hash().String()}
	if len(info.Head) > shortHashLen {
		info.Head = info.Head[:shortHashLen]
	}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	return info, nil
}
