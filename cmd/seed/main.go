package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedOptions struct {
	envFile         string
	serviceCount    int
	reviewCount     int
	petCount        int
	reminderCount   int
	dropCollections bool
	randomSeed      int64
}

type collections struct {
	services      string
	reviews       string
	pets          string
	healthRecords string
	reminders     string
}

type serviceStatsDocument struct {
	ReviewCount    int        `bson:"reviewCount"`
	AvgRating      *float64   `bson:"avgRating,omitempty"`
	LastReviewedAt *time.Time `bson:"lastReviewedAt,omitempty"`
}

type serviceDocument struct {
	ID             primitive.ObjectID   `bson:"_id"`
	Name           string               `bson:"name"`
	Address        string               `bson:"address,omitempty"`
	City           string               `bson:"city,omitempty"`
	CategoryID     string               `bson:"category_id,omitempty"`
	ContactPhone   string               `bson:"contact_phone,omitempty"`
	Website        string               `bson:"website,omitempty"`
	OperatingHours string               `bson:"operating_hours,omitempty"`
	PriceRange     int                  `bson:"price_range,omitempty"`
	Latitude       *float64             `bson:"latitude,omitempty"`
	Longitude      *float64             `bson:"longitude,omitempty"`
	Verified       bool                 `bson:"verified"`
	Tags           []string             `bson:"tags,omitempty"`
	PhotoURLs      []string             `bson:"photo_urls,omitempty"`
	Description    string               `bson:"description,omitempty"`
	Stats          serviceStatsDocument `bson:"stats"`
	ExternalSource string               `bson:"external_source,omitempty"`
	ExternalID     string               `bson:"external_id,omitempty"`
	ExternalURL    string               `bson:"external_url,omitempty"`
	CreatedAt      time.Time            `bson:"created_at"`
	UpdatedAt      time.Time            `bson:"updated_at"`
}

type reviewDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	ServiceID  primitive.ObjectID `bson:"service_id"`
	AuthorName string             `bson:"author_name,omitempty"`
	Rating     float64            `bson:"rating"`
	Comment    string             `bson:"comment,omitempty"`
	Tags       []string           `bson:"tags,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

type petDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	OwnerID   string             `bson:"owner_id"`
	Name      string             `bson:"name"`
	Species   string             `bson:"species"`
	Breed     string             `bson:"breed,omitempty"`
	BirthDate *time.Time         `bson:"birth_date,omitempty"`
	Gender    string             `bson:"gender,omitempty"`
	WeightKg  *float64           `bson:"weight_kg,omitempty"`
	PhotoURL  string             `bson:"photo_url,omitempty"`
	Notes     string             `bson:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type healthRecordDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	PetID      primitive.ObjectID `bson:"pet_id"`
	OwnerID    string             `bson:"owner_id"`
	RecordType string             `bson:"record_type"`
	Title      string             `bson:"title"`
	Notes      string             `bson:"notes,omitempty"`
	VetName    string             `bson:"vet_name,omitempty"`
	RecordedAt time.Time          `bson:"recorded_at"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

type reminderDocument struct {
	ID          primitive.ObjectID  `bson:"_id"`
	PetID       *primitive.ObjectID `bson:"pet_id,omitempty"`
	OwnerID     string              `bson:"owner_id"`
	Title       string              `bson:"title"`
	Notes       string              `bson:"notes,omitempty"`
	Frequency   string              `bson:"frequency"`
	DueAt       time.Time           `bson:"due_at"`
	Completed   bool                `bson:"completed"`
	CompletedAt *time.Time          `bson:"completed_at,omitempty"`
	CreatedAt   time.Time           `bson:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at"`
}

type serviceMeta struct {
	ID         primitive.ObjectID
	Name       string
	City       string
	CategoryID string
	Tags       []string
}

type statsAccumulator struct {
	reviewCount int
	ratingSum   float64
	lastReview  time.Time
}

func main() {
	opts := parseFlags()

	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			log.Fatalf("failed to load env file %s: %v", opts.envFile, err)
		}
	} else if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := collections{
		services:      envOrDefault("SERVICE_COLLECTION", "services"),
		reviews:       envOrDefault("REVIEW_COLLECTION", "service_reviews"),
		pets:          envOrDefault("PET_COLLECTION", "pets"),
		healthRecords: envOrDefault("HEALTH_RECORD_COLLECTION", "health_records"),
		reminders:     envOrDefault("REMINDER_COLLECTION", "reminders"),
	}

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "petmate")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(dbName)

	if opts.dropCollections {
		dropCollections(ctx, db, cfg)
		log.Printf("dropped existing collections")
	}

	if err := ensureIndexes(ctx, db, cfg); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))

	serviceDocs, metas := generateServices(rng, opts.serviceCount)
	if len(serviceDocs) == 0 {
		log.Fatal("no service docs were generated")
	}
	if err := insertMany(ctx, db.Collection(cfg.services), toAnySlice(serviceDocs)); err != nil {
		log.Fatalf("failed to insert services: %v", err)
	}

	reviewDocs, stats := generateReviews(rng, metas, opts.reviewCount)
	if err := insertMany(ctx, db.Collection(cfg.reviews), toAnySlice(reviewDocs)); err != nil {
		log.Fatalf("failed to insert reviews: %v", err)
	}

	if err := applyStats(ctx, db.Collection(cfg.services), stats); err != nil {
		log.Fatalf("failed to update service stats: %v", err)
	}

	petDocs := generatePets(rng, opts.petCount)
	if err := insertMany(ctx, db.Collection(cfg.pets), toAnySlice(petDocs)); err != nil {
		log.Fatalf("failed to insert pets: %v", err)
	}

	recordDocs := generateHealthRecords(rng, petDocs)
	if err := insertMany(ctx, db.Collection(cfg.healthRecords), toAnySlice(recordDocs)); err != nil {
		log.Fatalf("failed to insert health records: %v", err)
	}

	reminderDocs := generateReminders(rng, petDocs, opts.reminderCount)
	if err := insertMany(ctx, db.Collection(cfg.reminders), toAnySlice(reminderDocs)); err != nil {
		log.Fatalf("failed to insert reminders: %v", err)
	}

	log.Printf("seed done: services=%d reviews=%d pets=%d healthRecords=%d reminders=%d",
		len(serviceDocs), len(reviewDocs), len(petDocs), len(recordDocs), len(reminderDocs))
	log.Printf("Mongo: %s / %s", mongoURI, dbName)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.StringVar(&opts.envFile, "env-file", "", "path to an env file (defaults to .env in the working directory)")
	flag.IntVar(&opts.serviceCount, "services", 20, "number of service listings to generate")
	flag.IntVar(&opts.reviewCount, "reviews", 80, "total number of reviews to generate")
	flag.IntVar(&opts.petCount, "pets", 10, "number of pet profiles to generate")
	flag.IntVar(&opts.reminderCount, "reminders", 15, "number of reminders to generate")
	flag.BoolVar(&opts.dropCollections, "drop", true, "drop existing collections before inserting")
	defaultSeed := time.Now().UnixNano()
	flag.Int64Var(&opts.randomSeed, "seed", defaultSeed, "random seed for reproducibility")
	flag.Parse()

	if opts.serviceCount <= 0 {
		log.Fatal("services must be at least 1")
	}
	if opts.reviewCount < opts.serviceCount {
		opts.reviewCount = opts.serviceCount
	}
	if opts.petCount < 0 {
		opts.petCount = 0
	}
	if opts.reminderCount < 0 {
		opts.reminderCount = 0
	}
	return opts
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func dropCollections(ctx context.Context, db *mongo.Database, cfg collections) {
	for _, name := range []string{
		cfg.services, cfg.reviews, cfg.pets, cfg.healthRecords, cfg.reminders,
	} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			// Drop also errors when the collection does not exist, keep it a warning.
			log.Printf("WARN: failed to drop collection %s: %v", name, err)
		}
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database, cfg collections) error {
	serviceIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "stats.avgRating", Value: -1}},
			Options: options.Index().SetName("idx_service_avgRating"),
		},
		{
			Keys:    bson.D{{Key: "category_id", Value: 1}, {Key: "city", Value: 1}},
			Options: options.Index().SetName("idx_service_category_city"),
		},
		{
			Keys:    bson.D{{Key: "external_source", Value: 1}, {Key: "external_id", Value: 1}},
			Options: options.Index().SetName("idx_service_external_ref"),
		},
	}
	if _, err := db.Collection(cfg.services).Indexes().CreateMany(ctx, serviceIndexes); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.reviews).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "service_id", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("idx_review_service_created"),
	}); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.pets).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("idx_pet_owner_created"),
	}); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.healthRecords).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pet_id", Value: 1}, {Key: "recorded_at", Value: -1}},
		Options: options.Index().SetName("idx_record_pet_recorded"),
	}); err != nil {
		return err
	}

	if _, err := db.Collection(cfg.reminders).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "due_at", Value: 1}},
		Options: options.Index().SetName("idx_reminder_owner_due"),
	}); err != nil {
		return err
	}

	return nil
}

func generateServices(rng *rand.Rand, count int) ([]serviceDocument, []serviceMeta) {
	now := time.Now().UTC()
	docs := make([]serviceDocument, 0, count)
	metas := make([]serviceMeta, 0, count)

	for i := 0; i < count; i++ {
		name := serviceNames[i%len(serviceNames)]
		city := cities[rng.Intn(len(cities))]
		category := categoryOptions[rng.Intn(len(categoryOptions))]
		tags := pickUnique(rng, tagOptions, 1+rng.Intn(3))
		coords := cityCoordinates[city]
		lat := coords.lat + (rng.Float64()-0.5)*0.05
		lng := coords.lng + (rng.Float64()-0.5)*0.05

		created := now.Add(-time.Duration(rng.Intn(365)) * 24 * time.Hour)
		doc := serviceDocument{
			ID:             primitive.NewObjectID(),
			Name:           name,
			Address:        fmt.Sprintf("Jl. %s No. %d, %s", streetNames[rng.Intn(len(streetNames))], 1+rng.Intn(200), city),
			City:           city,
			CategoryID:     category,
			ContactPhone:   fmt.Sprintf("+62 21-%04d-%04d", rng.Intn(9999), rng.Intn(9999)),
			Website:        fmt.Sprintf("https://example.id/%s", slugify(name)),
			OperatingHours: randomOperatingHours(rng),
			PriceRange:     1 + rng.Intn(4),
			Latitude:       &lat,
			Longitude:      &lng,
			Verified:       rng.Intn(3) != 0,
			Tags:           tags,
			PhotoURLs:      generatePhotoURLs(rng, name, 3),
			Description:    descriptions[rng.Intn(len(descriptions))],
			Stats:          serviceStatsDocument{},
			CreatedAt:      created,
			UpdatedAt:      created,
		}
		docs = append(docs, doc)
		metas = append(metas, serviceMeta{
			ID:         doc.ID,
			Name:       doc.Name,
			City:       doc.City,
			CategoryID: doc.CategoryID,
			Tags:       doc.Tags,
		})
	}
	return docs, metas
}

func generateReviews(rng *rand.Rand, services []serviceMeta, total int) ([]reviewDocument, map[primitive.ObjectID]*statsAccumulator) {
	if total < len(services) {
		total = len(services)
	}
	counts := distribute(total, len(services), 1, 12, rng)
	now := time.Now().UTC()
	stats := make(map[primitive.ObjectID]*statsAccumulator, len(services))
	reviews := make([]reviewDocument, 0, total)

	for idx, svc := range services {
		for j := 0; j < counts[idx]; j++ {
			created := now.Add(-time.Duration(rng.Intn(120*24)) * time.Hour)
			rating := 3.0 + rng.Float64()*2.0
			rating = round(rating, 1)

			review := reviewDocument{
				ID:         primitive.NewObjectID(),
				ServiceID:  svc.ID,
				AuthorName: authorNames[rng.Intn(len(authorNames))],
				Rating:     rating,
				Comment:    reviewComments[rng.Intn(len(reviewComments))],
				Tags:       svc.Tags,
				CreatedAt:  created,
				UpdatedAt:  created,
			}
			reviews = append(reviews, review)

			acc := stats[svc.ID]
			if acc == nil {
				acc = &statsAccumulator{}
				stats[svc.ID] = acc
			}
			acc.reviewCount++
			acc.ratingSum += rating
			if created.After(acc.lastReview) {
				acc.lastReview = created
			}
		}
	}

	return reviews, stats
}

func generatePets(rng *rand.Rand, count int) []petDocument {
	if count == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]petDocument, 0, count)
	for i := 0; i < count; i++ {
		species := speciesOptions[rng.Intn(len(speciesOptions))]
		birth := now.Add(-time.Duration(180+rng.Intn(365*8)) * 24 * time.Hour)
		weight := round(1.0+rng.Float64()*30.0, 1)
		created := now.Add(-time.Duration(rng.Intn(180)) * 24 * time.Hour)
		docs = append(docs, petDocument{
			ID:        primitive.NewObjectID(),
			OwnerID:   fmt.Sprintf("owner-%03d", 1+rng.Intn(5)),
			Name:      petNames[i%len(petNames)],
			Species:   species,
			Breed:     breedsFor(species, rng),
			BirthDate: &birth,
			Gender:    genderOptions[rng.Intn(len(genderOptions))],
			WeightKg:  &weight,
			Notes:     petNotes[rng.Intn(len(petNotes))],
			CreatedAt: created,
			UpdatedAt: created,
		})
	}
	return docs
}

func generateHealthRecords(rng *rand.Rand, pets []petDocument) []healthRecordDocument {
	if len(pets) == 0 {
		return nil
	}
	now := time.Now().UTC()
	var docs []healthRecordDocument
	for _, pet := range pets {
		count := 1 + rng.Intn(4)
		for i := 0; i < count; i++ {
			recorded := now.Add(-time.Duration(rng.Intn(365)) * 24 * time.Hour)
			recordType := recordTypeOptions[rng.Intn(len(recordTypeOptions))]
			docs = append(docs, healthRecordDocument{
				ID:         primitive.NewObjectID(),
				PetID:      pet.ID,
				OwnerID:    pet.OwnerID,
				RecordType: recordType,
				Title:      recordTitles[recordType][rng.Intn(len(recordTitles[recordType]))],
				VetName:    vetNames[rng.Intn(len(vetNames))],
				RecordedAt: recorded,
				CreatedAt:  recorded,
				UpdatedAt:  recorded,
			})
		}
	}
	return docs
}

func generateReminders(rng *rand.Rand, pets []petDocument, count int) []reminderDocument {
	if count == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]reminderDocument, 0, count)
	for i := 0; i < count; i++ {
		var petID *primitive.ObjectID
		ownerID := fmt.Sprintf("owner-%03d", 1+rng.Intn(5))
		if len(pets) > 0 && rng.Intn(4) != 0 {
			pet := pets[rng.Intn(len(pets))]
			petID = &pet.ID
			ownerID = pet.OwnerID
		}
		due := now.Add(time.Duration(rng.Intn(30*24)) * time.Hour)
		completed := rng.Intn(5) == 0
		var completedAt *time.Time
		if completed {
			done := now.Add(-time.Duration(rng.Intn(48)) * time.Hour)
			completedAt = &done
		}
		created := now.Add(-time.Duration(rng.Intn(30*24)) * time.Hour)
		docs = append(docs, reminderDocument{
			ID:          primitive.NewObjectID(),
			PetID:       petID,
			OwnerID:     ownerID,
			Title:       reminderTitles[rng.Intn(len(reminderTitles))],
			Frequency:   frequencyOptions[rng.Intn(len(frequencyOptions))],
			DueAt:       due,
			Completed:   completed,
			CompletedAt: completedAt,
			CreatedAt:   created,
			UpdatedAt:   created,
		})
	}
	return docs
}

func insertMany(ctx context.Context, col *mongo.Collection, docs []interface{}) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := col.InsertMany(ctx, docs)
	return err
}

func applyStats(ctx context.Context, col *mongo.Collection, stats map[primitive.ObjectID]*statsAccumulator) error {
	now := time.Now().UTC()
	for id, agg := range stats {
		if agg.reviewCount == 0 {
			continue
		}
		update := bson.M{
			"stats.reviewCount":    agg.reviewCount,
			"stats.avgRating":      round(agg.ratingSum/float64(agg.reviewCount), 1),
			"stats.lastReviewedAt": agg.lastReview,
			"updated_at":           now,
		}
		if _, err := col.UpdateByID(ctx, id, bson.M{"$set": update}); err != nil {
			return err
		}
	}
	return nil
}

func toAnySlice[T any](in []T) []interface{} {
	out := make([]interface{}, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}

func distribute(total, buckets, minPerBucket, maxPerBucket int, rng *rand.Rand) []int {
	if buckets <= 0 {
		return nil
	}
	if maxPerBucket < minPerBucket {
		maxPerBucket = minPerBucket
	}
	counts := make([]int, buckets)
	for i := range counts {
		counts[i] = minPerBucket
	}
	remaining := total - minPerBucket*buckets
	if remaining < 0 {
		remaining = 0
	}
	for remaining > 0 {
		i := rng.Intn(buckets)
		if counts[i] >= maxPerBucket {
			continue
		}
		counts[i]++
		remaining--
	}
	return counts
}

func pickUnique(rng *rand.Rand, source []string, count int) []string {
	if count >= len(source) {
		cp := make([]string, len(source))
		copy(cp, source)
		return cp
	}
	seen := make(map[int]struct{}, count)
	result := make([]string, 0, count)
	for len(result) < count {
		idx := rng.Intn(len(source))
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		result = append(result, source[idx])
	}
	return result
}

func breedsFor(species string, rng *rand.Rand) string {
	if breeds, ok := breedOptions[species]; ok && len(breeds) > 0 {
		return breeds[rng.Intn(len(breeds))]
	}
	return ""
}

func randomOperatingHours(rng *rand.Rand) string {
	open := 7 + rng.Intn(4)
	closeHour := 17 + rng.Intn(5)
	return fmt.Sprintf("%02d:00-%02d:00", open, closeHour)
}

func generatePhotoURLs(rng *rand.Rand, name string, max int) []string {
	if max <= 0 {
		return nil
	}
	count := 1 + rng.Intn(max)
	urls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		urls = append(urls, fmt.Sprintf("https://picsum.photos/seed/%s-%d/600/400", slugify(name), i+1))
	}
	return urls
}

func round(val float64, precision int) float64 {
	mul := math.Pow(10, float64(precision))
	return math.Round(val*mul) / mul
}

func slugify(parts ...string) string {
	builder := strings.Builder{}
	for _, part := range parts {
		for _, r := range strings.ToLower(part) {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				builder.WriteRune(r)
			} else if unicode.IsSpace(r) || r == '-' || r == '_' {
				builder.WriteRune('-')
			}
		}
	}
	out := builder.String()
	out = strings.Trim(out, "-")
	if out == "" {
		return fmt.Sprintf("service-%d", time.Now().UnixNano())
	}
	return out
}

type coordinate struct {
	lat float64
	lng float64
}

var (
	serviceNames = []string{
		"Klinik Hewan Sehat Selalu", "PetCare Plus", "Rumah Grooming Kita", "Happy Paws Hotel",
		"Cat & Dog Cafe", "Taman Anjing Senayan", "Vet24 Animal Clinic", "Groomeo Studio",
		"Pet Republic", "Kennel Nusantara", "Meow House", "Doggo Daycare",
		"Satwa Medika", "Pawsome Grooming", "The Pet Yard", "Klinik Satwa Kita",
		"Furry Friends Station", "Animalia Care", "Bark & Purr", "Pet Haven Jakarta",
	}

	cities = []string{"Jakarta", "Bandung", "Surabaya", "Yogyakarta", "Medan", "Bali"}

	cityCoordinates = map[string]coordinate{
		"Jakarta":    {-6.2088, 106.8456},
		"Bandung":    {-6.9175, 107.6191},
		"Surabaya":   {-7.2575, 112.7521},
		"Yogyakarta": {-7.7956, 110.3695},
		"Medan":      {3.5952, 98.6722},
		"Bali":       {-8.3405, 115.0920},
	}

	streetNames = []string{"Sudirman", "Thamrin", "Gatot Subroto", "Diponegoro", "Ahmad Yani", "Malioboro", "Asia Afrika"}

	categoryOptions = []string{
		"veterinary_clinics", "pet_shops", "grooming", "pet_hotels",
		"pet_cafes", "pet_parks", "pet_training", "pet_friendly_restaurants",
	}

	tagOptions = []string{"24-jam", "antar-jemput", "cat-friendly", "dog-friendly", "vaksinasi", "steril", "eksotik"}

	descriptions = []string{
		"Klinik dengan dokter hewan berpengalaman dan fasilitas rawat inap.",
		"Grooming lengkap untuk anjing dan kucing, termasuk perawatan kulit.",
		"Penitipan hewan dengan kamar ber-AC dan laporan harian ke pemilik.",
		"Toko perlengkapan hewan dengan pilihan makanan premium dan aksesoris.",
	}

	authorNames = []string{"Andi", "Budi", "Citra", "Dewi", "Eka", "Fajar", "Gita", "Hana"}

	reviewComments = []string{
		"Pelayanan ramah dan hasil grooming rapi.",
		"Dokternya teliti, kucing saya cepat pulih.",
		"Tempat bersih, harga sesuai kualitas.",
		"Antriannya agak lama tapi hasilnya memuaskan.",
		"Staf sangat sabar menghadapi anjing saya yang aktif.",
	}

	petNames = []string{"Milo", "Luna", "Mochi", "Bobby", "Chiko", "Nala", "Oreo", "Snow", "Bruno", "Kitty"}

	speciesOptions = []string{"dog", "cat", "bird", "rabbit", "hamster"}

	breedOptions = map[string][]string{
		"dog":    {"Golden Retriever", "Poodle", "Shiba Inu", "Beagle", "Pomeranian"},
		"cat":    {"Persian", "British Shorthair", "Domestic", "Maine Coon"},
		"bird":   {"Lovebird", "Cockatiel", "Parakeet"},
		"rabbit": {"Holland Lop", "Netherland Dwarf"},
	}

	genderOptions = []string{"male", "female"}

	petNotes = []string{
		"Alergi terhadap makanan mengandung ayam.",
		"Sudah steril.",
		"Takut suara keras.",
		"",
	}

	recordTypeOptions = []string{"vaccination", "checkup", "treatment", "medication", "surgery"}

	recordTitles = map[string][]string{
		"vaccination": {"Vaksin rabies", "Vaksin tricat", "Vaksin tetracat"},
		"checkup":     {"Pemeriksaan rutin", "Cek kesehatan tahunan"},
		"treatment":   {"Perawatan jamur kulit", "Pembersihan telinga"},
		"medication":  {"Obat cacing", "Obat kutu bulanan"},
		"surgery":     {"Sterilisasi", "Operasi kecil"},
	}

	vetNames = []string{"drh. Sari", "drh. Wijaya", "drh. Putri", "drh. Hartono"}

	reminderTitles = []string{
		"Vaksin booster", "Grooming bulanan", "Obat kutu", "Cek kesehatan rutin", "Potong kuku",
	}

	frequencyOptions = []string{"once", "daily", "weekly", "monthly", "yearly"}
)
