package domain

// Scope is a string capability identifier gating one action on one resource.
// The string form ("<resource>:<action>") is the wire and storage contract:
// existing values are never renamed.
type Scope string

func (s Scope) String() string { return string(s) }

const (
	ScopeProductsCreate Scope = "products:create"
	ScopeProductsRead   Scope = "products:read"
	ScopeProductsUpdate Scope = "products:update"
	ScopeProductsDelete Scope = "products:delete"
	ScopeProductsList   Scope = "products:list"

	ScopeCategoriesCreate Scope = "categories:create"
	ScopeCategoriesRead   Scope = "categories:read"
	ScopeCategoriesUpdate Scope = "categories:update"
	ScopeCategoriesDelete Scope = "categories:delete"
	ScopeCategoriesList   Scope = "categories:list"

	// Reviews have no create scope: shoppers submit them, admins only moderate.
	ScopeReviewsRead   Scope = "reviews:read"
	ScopeReviewsUpdate Scope = "reviews:update"
	ScopeReviewsDelete Scope = "reviews:delete"
	ScopeReviewsList   Scope = "reviews:list"
)

// registeredCatalogs lists every per-resource scope catalog. Adding a resource
// here automatically extends the admin scope set for newly issued tokens;
// already-issued tokens keep the set frozen at issuance.
var registeredCatalogs = [][]Scope{
	{ScopeProductsCreate, ScopeProductsRead, ScopeProductsUpdate, ScopeProductsDelete, ScopeProductsList},
	{ScopeCategoriesCreate, ScopeCategoriesRead, ScopeCategoriesUpdate, ScopeCategoriesDelete, ScopeCategoriesList},
	{ScopeReviewsRead, ScopeReviewsUpdate, ScopeReviewsDelete, ScopeReviewsList},
}

// ScopesForRole maps a role to its scope strings. Pure function, no I/O.
// Total over all known roles: unknown roles get the empty set, same as the
// base role (extension point for future limited scopes).
func ScopesForRole(role string) []string {
	switch role {
	case RoleAdmin:
		var scopes []string
		for _, catalog := range registeredCatalogs {
			for _, s := range catalog {
				scopes = append(scopes, s.String())
			}
		}
		return scopes
	default:
		return []string{}
	}
}
