package models

// SocialMediaAccount is one tracked profile with manually entered metrics.
// Growth fields are percentages seeded when the account is created.
type SocialMediaAccount struct {
	ID       string   `json:"id"`
	UserID   string   `json:"userId"`
	Platform Platform `json:"platform"`
	Username string   `json:"username"`

	Followers       int64   `json:"followers"`
	FollowersGrowth float64 `json:"followersGrowth"`
	Views           int64   `json:"views"`
	ViewsGrowth     float64 `json:"viewsGrowth"`
	Comments        int64   `json:"comments"`
	CommentsGrowth  float64 `json:"commentsGrowth"`
	Likes           int64   `json:"likes"`
	LikesGrowth     float64 `json:"likesGrowth"`
	Revenue         float64 `json:"revenue"`
	RevenueGrowth   float64 `json:"revenueGrowth"`

	Avatar      string `json:"avatar"`
	IsVerified  bool   `json:"isVerified"`
	LastUpdated string `json:"lastUpdated"`
}

// AccountDraft holds the user-entered fields of a new account.
type AccountDraft struct {
	Platform   Platform
	Username   string
	Followers  int64
	Views      int64
	Comments   int64
	Likes      int64
	Revenue    float64
	IsVerified bool
}

// AccountPatch carries an account edit. Nil fields are left untouched.
type AccountPatch struct {
	Platform   *Platform
	Username   *string
	Followers  *int64
	Views      *int64
	Comments   *int64
	Likes      *int64
	Revenue    *float64
	IsVerified *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p AccountPatch) IsEmpty() bool {
	return p.Platform == nil && p.Username == nil && p.Followers == nil && p.Views == nil &&
		p.Comments == nil && p.Likes == nil && p.Revenue == nil && p.IsVerified == nil
}

// Apply returns a with the present fields of p merged in.
func (a SocialMediaAccount) Apply(p AccountPatch) SocialMediaAccount {
	if p.Platform != nil {
		a.Platform = *p.Platform
	}
	if p.Username != nil {
		a.Username = *p.Username
	}
	if p.Followers != nil {
		a.Followers = *p.Followers
	}
	if p.Views != nil {
		a.Views = *p.Views
	}
	if p.Comments != nil {
		a.Comments = *p.Comments
	}
	if p.Likes != nil {
		a.Likes = *p.Likes
	}
	if p.Revenue != nil {
		a.Revenue = *p.Revenue
	}
	if p.IsVerified != nil {
		a.IsVerified = *p.IsVerified
	}
	return a
}
