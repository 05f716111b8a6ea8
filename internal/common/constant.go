package common

// Local storage keys. Both values are JSON documents.
const (
	// StorageKeyUser holds the persisted session user.
	StorageKeyUser = "user"
	// StorageKeyAccounts holds the flat list of every user's accounts.
	StorageKeyAccounts = "socialAccounts"
)

// DefaultAvatar is assigned to new users and accounts.
const DefaultAvatar = "https://images.pexels.com/photos/1040881/pexels-photo-1040881.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2"

// JustNow is the lastUpdated stamp written on account create and edit.
const JustNow = "Just now"
