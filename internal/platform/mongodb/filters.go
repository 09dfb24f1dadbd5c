package mongodb

import (
	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// postListFilter translates a PostFilter into a query document.
// An empty search adds no title condition, so posts without a title are
// still listed.
func postListFilter(f store.PostFilter) bson.M {
	filter := bson.M{}
	if f.Search != "" {
		filter[domain.FieldTitle] = primitive.Regex{Pattern: f.SearchPattern(), Options: "i"}
	}
	if f.Category != "" {
		filter[domain.FieldCategory] = f.Category
	}
	return filter
}

func idFilter(id domain.ID) bson.M {
	return bson.M{domain.FieldID: id}
}

func emailFilter(email string) bson.M {
	return bson.M{domain.FieldEmail: email}
}

func blogIDFilter(blogID string) bson.M {
	return bson.M{domain.FieldBlogID: blogID}
}

// setUpdate builds the $set update used for upserts.
func setUpdate(fields domain.Document) bson.M {
	return bson.M{"$set": bson.M(fields.WithoutID())}
}
