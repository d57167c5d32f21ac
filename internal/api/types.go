package api

// Source tags for wallpapers.
const (
	SourceBuiltIn      = "built-in"
	SourceUserUploaded = "user-uploaded"
)

// Wallpaper mirrors one entry of the wallpaper endpoint's GET payload.
// Rating is the server-side aggregate average in [0,5].
type Wallpaper struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	ImageURL      string  `json:"image_url"`
	SourceType    string  `json:"source_type"`
	Author        string  `json:"author,omitempty"`
	Rating        float64 `json:"rating"`
	DownloadCount int     `json:"download_count"`
	Views         int     `json:"views"`
	RatingCount   int     `json:"rating_count"`
	CommentCount  int     `json:"comment_count"`
}

// User is the account record returned by the auth endpoint.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResult pairs a bearer token with the authenticated user.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CommentReceipt carries what the wallpaper endpoint echoes back after a
// successful comment write. ID is the server-assigned identifier; CreatedAt
// is an ISO timestamp. Both may be empty on older deployments.
type CommentReceipt struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type wallpaperListResponse struct {
	Wallpapers []Wallpaper `json:"wallpapers"`
}

type rateResponse struct {
	Message   string  `json:"message"`
	AvgRating float64 `json:"avg_rating"`
}

type uploadResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}
