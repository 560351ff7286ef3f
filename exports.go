package srv

import (
	"github.com/jackfish212/srv/listing"
	"github.com/jackfish212/srv/resource"
	"github.com/jackfish212/srv/types"
)

type (
	Entry     = types.Entry
	Provider  = types.Provider
	Readable  = types.Readable
	Resource  = resource.Resource
	Response  = resource.Response
	Templates = listing.Templates
	Category  = listing.Category
)

var (
	ErrNotFound  = types.ErrNotFound
	ErrForbidden = types.ErrForbidden
	ErrIsDir     = types.ErrIsDir
	ErrNotDir    = types.ErrNotDir
	ErrIrregular = types.ErrIrregular
)
