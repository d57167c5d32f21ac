package catalog

import "mural/internal/api"

// Samples returns the built-in starter collection shown before the remote
// catalog has been fetched, or when it has nothing to offer yet.
func Samples() []api.Wallpaper {
	return []api.Wallpaper{
		{ID: 1, Title: "Abstract Gradient", ImageURL: "https://cdn.poehali.dev/projects/ae42d029-729c-481b-aa08-d150183ddd31/files/22ee280f-8b09-4805-b3fa-87248c2f1451.jpg", SourceType: api.SourceBuiltIn, Author: "TheMe"},
		{ID: 2, Title: "Cosmic Nebula", ImageURL: "https://cdn.poehali.dev/projects/ae42d029-729c-481b-aa08-d150183ddd31/files/79880b85-e63c-4c3b-97a5-27ba472fa2ad.jpg", SourceType: api.SourceBuiltIn, Author: "TheMe"},
		{ID: 3, Title: "Mountain Sunset", ImageURL: "https://cdn.poehali.dev/projects/ae42d029-729c-481b-aa08-d150183ddd31/files/e5914642-f0d8-4be3-8f0c-90684315a031.jpg", SourceType: api.SourceBuiltIn, Author: "TheMe"},
		{ID: 4, Title: "Abstract Gradient", ImageURL: "https://cdn.poehali.dev/projects/ae42d029-729c-481b-aa08-d150183ddd31/files/22ee280f-8b09-4805-b3fa-87248c2f1451.jpg", SourceType: api.SourceBuiltIn, Author: "TheMe"},
		{ID: 5, Title: "Cosmic Nebula", ImageURL: "https://cdn.poehali.dev/projects/ae42d029-729c-481b-aa08-d150183ddd31/files/79880b85-e63c-4c3b-97a5-27ba472fa2ad.jpg", SourceType: api.SourceUserUploaded, Author: "User123"},
		{ID: 6, Title: "Mountain Sunset", ImageURL: "https://cdn.poehali.dev/projects/ae42d029-729c-481b-aa08-d150183ddd31/files/e5914642-f0d8-4be3-8f0c-90684315a031.jpg", SourceType: api.SourceUserUploaded, Author: "PhotoPro"},
	}
}
