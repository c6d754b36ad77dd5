package docstore

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/idilsaglam/webtutorials/internal/model"
	"github.com/idilsaglam/webtutorials/internal/ui"
)

// SeedPosts returns the five blog posts of the walkthrough. The first one is
// inserted alone, the rest in bulk.
func SeedPosts(now time.Time) []model.Post {
	post := func(n int, category string, tags ...string) model.Post {
		return model.Post{
			Title:    fmt.Sprintf("Post Title %d", n),
			Body:     fmt.Sprintf("Body of post %d.", n),
			Category: category,
			Likes:    n,
			Tags:     tags,
			Date:     now.UTC(),
		}
	}
	return []model.Post{
		post(1, "News", "news", "events"),
		post(2, "Event", "news", "events"),
		post(3, "Technology", "news", "technology"),
		post(4, "Event", "news", "event"),
		post(5, "Social", "news", "social"),
	}
}

// SanityCheck pings the server, checks that the database and collection
// exist, then prints every document.
func SanityCheck(ctx context.Context, s *Store, w io.Writer) error {
	ui.Section(w, "MongoDB Connection Test")
	if err := s.Ping(ctx); err != nil {
		return err
	}
	ui.OK(w, "MongoDB client connected successfully.")

	ok, err := s.DatabaseExists(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Errorf("database '%s' does not exist", s.DatabaseName())
	}
	ui.OK(w, fmt.Sprintf("Database '%s' exists.", s.DatabaseName()))

	ok, err = s.CollectionExists(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Errorf("collection '%s' does not exist", s.CollectionName())
	}
	ui.OK(w, fmt.Sprintf("Collection '%s' exists.", s.CollectionName()))

	docs, err := s.FindAll(ctx, nil, nil)
	if err != nil {
		return err
	}
	printDocs(w, docs, "No documents found in the collection.")
	return nil
}

// RunDemo inserts the seed posts, reads them back with several filters,
// updates and deletes some of them.
func RunDemo(ctx context.Context, s *Store, w io.Writer, now time.Time) error {
	posts := SeedPosts(now)

	id, err := s.InsertOne(ctx, posts[0])
	if err != nil {
		return err
	}
	ui.OK(w, fmt.Sprintf("Inserted 1 document with _id: %s", formatID(id)))

	rest := make([]any, 0, len(posts)-1)
	for _, p := range posts[1:] {
		rest = append(rest, p)
	}
	n, err := s.InsertMany(ctx, rest)
	if err != nil {
		return err
	}
	if n == 0 {
		ui.Warn(w, "No documents provided for insertion.")
	} else {
		ui.OK(w, fmt.Sprintf("Inserted %d documents.", n))
	}

	event := bson.M{"category": "Event"}
	steps := []struct {
		title      string
		first      bool
		filter     any
		projection any
	}{
		{"All documents", false, nil, nil},
		{"First document", true, nil, nil},
		{"First Event", true, event, nil},
		{"All documents", false, bson.M{}, nil},
		{"All Events", false, event, nil},
		{"All Events, title and body only", false, event, bson.M{"title": 1, "body": 1, "_id": 0}},
	}
	for _, st := range steps {
		ui.Section(w, st.title)
		if st.first {
			doc, err := s.FindFirst(ctx, st.filter, st.projection)
			if err != nil {
				return err
			}
			if doc == nil {
				ui.Warn(w, "No matching document found.")
				continue
			}
			fmt.Fprintln(w, "First matching document:")
			fmt.Fprintln(w, formatDoc(doc))
			continue
		}
		docs, err := s.FindAll(ctx, st.filter, st.projection)
		if err != nil {
			return err
		}
		printDocs(w, docs, "No matching documents found.")
	}

	ui.Section(w, "Updates")
	modified, err := s.UpdateOne(ctx, bson.M{"title": "Post Title 2"}, bson.M{"likes": 99})
	if err != nil {
		return err
	}
	if modified > 0 {
		ui.OK(w, "One document updated successfully.")
	} else {
		ui.Warn(w, "No document was updated.")
	}
	modified, err = s.UpdateAll(ctx, event, bson.M{"likes": 10})
	if err != nil {
		return err
	}
	if modified > 0 {
		ui.OK(w, fmt.Sprintf("Updated %d document(s) successfully.", modified))
	} else {
		ui.Warn(w, "No documents were updated.")
	}

	ui.Section(w, "Deletes")
	deleted, err := s.DeleteOne(ctx, bson.M{"title": "Post Title 2"})
	if err != nil {
		return err
	}
	if deleted > 0 {
		ui.OK(w, "One document deleted.")
	} else {
		ui.Warn(w, "No document matched the query for deletion.")
	}
	deleted, err = s.DeleteMany(ctx, event)
	if err != nil {
		return err
	}
	if deleted > 0 {
		ui.OK(w, fmt.Sprintf("Deleted %d document(s).", deleted))
	} else {
		ui.Warn(w, "No matching documents found to delete.")
	}
	return nil
}

// ClearReset empties the collection, drops it and then drops the database.
func ClearReset(ctx context.Context, s *Store, w io.Writer) error {
	n, err := s.Clear(ctx)
	if err != nil {
		return err
	}
	ui.OK(w, fmt.Sprintf("Cleared %d documents from the collection.", n))

	if err := s.DropCollection(ctx); err != nil {
		return err
	}
	ui.OK(w, fmt.Sprintf("Collection '%s' dropped successfully.", s.CollectionName()))

	if err := s.DropDatabase(ctx); err != nil {
		return err
	}
	ui.OK(w, fmt.Sprintf("Database '%s' dropped successfully.", s.DatabaseName()))
	return nil
}

func printDocs(w io.Writer, docs []bson.M, empty string) {
	if len(docs) == 0 {
		ui.Warn(w, empty)
		return
	}
	fmt.Fprintf(w, "Found %d document(s):\n", len(docs))
	for _, d := range docs {
		fmt.Fprintln(w, formatDoc(d))
	}
}

func formatDoc(doc bson.M) string {
	b, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return fmt.Sprint(doc)
	}
	return string(b)
}

func formatID(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
