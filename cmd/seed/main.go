package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"

	"github.com/amendezc/audiophile-backend/pkg/config"
	"github.com/amendezc/audiophile-backend/pkg/db"
	"github.com/amendezc/audiophile-backend/pkg/db/models"
	"github.com/amendezc/audiophile-backend/pkg/enums"
	"github.com/amendezc/audiophile-backend/pkg/logger"
	"github.com/amendezc/audiophile-backend/pkg/types"
)

// Seeds the product catalog. Safe to run repeatedly: rows are matched on
// slug and existing products are left untouched.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	products := catalogProducts()
	result := dbClient.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).
		Create(&products)
	if result.Error != nil {
		logg.Error(ctx, "failed to seed products", result.Error)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"inserted": result.RowsAffected,
		"total":    len(products),
	})
	logg.Info(ctx, "catalog seeded")
}

func assetImages(slug, name string) types.ImageSet {
	return types.ImageSet{
		Mobile:  "/assets/product-" + slug + "/mobile/" + name + ".jpg",
		Tablet:  "/assets/product-" + slug + "/tablet/" + name + ".jpg",
		Desktop: "/assets/product-" + slug + "/desktop/" + name + ".jpg",
	}
}

func assetGallery(slug string) types.Gallery {
	return types.Gallery{
		First:  "/assets/product-" + slug + "/desktop/image-gallery-1.jpg",
		Second: "/assets/product-" + slug + "/desktop/image-gallery-2.jpg",
		Third:  "/assets/product-" + slug + "/desktop/image-gallery-3.jpg",
	}
}

func catalogProducts() []models.Product {
	return []models.Product{
		{
			Slug:        "xx99-mark-two-headphones",
			Name:        "XX99 Mark II Headphones",
			Category:    enums.CategoryHeadphones,
			IsNew:       true,
			Price:       2999,
			Description: "The new XX99 Mark II headphones is the pinnacle of pristine audio. It redefines your premium headphone experience by reproducing the balanced depth and precision of studio-quality sound.",
			Features:    "Featuring a genuine leather head strap and premium earcups, these headphones deliver superior comfort for those who like to enjoy endless listening. It includes intuitive controls designed for any situation. Whether you're taking a business call or just in your own personal space, the auto on/off and pause features ensure that you'll never miss a beat.\n\nThe advanced Active Noise Cancellation with built-in equalizer allow you to experience your audio world on your terms. It lets you enjoy your audio in peace, but quickly interact with your surroundings when you need to. Combined with Bluetooth 5.0 compliant connectivity and 17 hour battery life, the XX99 Mark II headphones gives you superior sound, cutting-edge technology, and a modern design aesthetic.",
			IncludedItems: []types.IncludedItem{
				{Quantity: 1, Item: "Headphone Unit"},
				{Quantity: 2, Item: "Replacement Earcups"},
				{Quantity: 1, Item: "User Manual"},
				{Quantity: 1, Item: "3.5mm 5m Audio Cable"},
				{Quantity: 1, Item: "Travel Bag"},
			},
			Gallery:         assetGallery("xx99-mark-two-headphones"),
			Images:          assetImages("xx99-mark-two-headphones", "image-product"),
			CategoryImage:   assetImages("xx99-mark-two-headphones", "image-category-page-preview"),
			RelatedProducts: []string{"xx99-mark-one-headphones", "xx59-headphones", "zx9-speaker"},
		},
		{
			Slug:        "xx99-mark-one-headphones",
			Name:        "XX99 Mark I Headphones",
			Category:    enums.CategoryHeadphones,
			Price:       1750,
			Description: "As the gold standard for headphones, the classic XX99 Mark I offers detailed and accurate audio reproduction for audiophiles, mixing engineers, and music aficionados alike in studios and on the go.",
			Features:    "As the headphones all others are measured against, the XX99 Mark I demonstrates over five decades of audio expertise, redefining the critical listening experience. This pair of closed-back headphones are made of industrial, aerospace-grade materials to emphasize durability at a relatively light weight of 11 oz.\n\nFrom the handcrafted microfiber ear cushions to the robust metal headband with inner damping element, the components work together to deliver comfort and uncompromising sound. Its closed-back design delivers up to 27 dB of passive noise cancellation, reducing resonance by reflecting sound to a dedicated absorber. For connectivity, a specially tuned cable is included with a balanced gold connector.",
			IncludedItems: []types.IncludedItem{
				{Quantity: 1, Item: "Headphone Unit"},
				{Quantity: 2, Item: "Replacement Earcups"},
				{Quantity: 1, Item: "User Manual"},
				{Quantity: 1, Item: "3.5mm 5m Audio Cable"},
			},
			Gallery:         assetGallery("xx99-mark-one-headphones"),
			Images:          assetImages("xx99-mark-one-headphones", "image-product"),
			CategoryImage:   assetImages("xx99-mark-one-headphones", "image-category-page-preview"),
			RelatedProducts: []string{"xx99-mark-two-headphones", "xx59-headphones", "zx9-speaker"},
		},
		{
			Slug:        "xx59-headphones",
			Name:        "XX59 Headphones",
			Category:    enums.CategoryHeadphones,
			Price:       899,
			Description: "Enjoy your audio almost anywhere and customize it to your specific tastes with the XX59 headphones. The stylish yet durable versatile wireless headset is a brilliant companion at home or on the move.",
			Features:    "These headphones have been created from durable, high-quality materials tough enough to take anywhere. Its compact folding design fuses comfort and minimalist style making it perfect for travel. Flawless transmission is assured by the latest wireless technology engineered for audio synchronization with videos.\n\nMore than a simple pair of headphones, this headset features a pair of built-in microphones for clear, hands-free calling when paired with a compatible smartphone. Controlling music and calls is also intuitive thanks to easy-access touch buttons on the earcups. Regardless of how you use the XX59 headphones, you can do so all day thanks to an impressive 30-hour battery life that can be rapidly recharged via USB-C.",
			IncludedItems: []types.IncludedItem{
				{Quantity: 1, Item: "Headphone Unit"},
				{Quantity: 2, Item: "Replacement Earcups"},
				{Quantity: 1, Item: "User Manual"},
				{Quantity: 1, Item: "3.5mm 5m Audio Cable"},
			},
			Gallery:         assetGallery("xx59-headphones"),
			Images:          assetImages("xx59-headphones", "image-product"),
			CategoryImage:   assetImages("xx59-headphones", "image-category-page-preview"),
			RelatedProducts: []string{"xx99-mark-two-headphones", "xx99-mark-one-headphones", "zx9-speaker"},
		},
		{
			Slug:        "zx9-speaker",
			Name:        "ZX9 Speaker",
			Category:    enums.CategorySpeakers,
			IsNew:       true,
			Price:       4500,
			Description: "Upgrade your sound system with the all new ZX9 active speaker. It's a bookshelf speaker system that offers truly wireless connectivity, creating new possibilities for more pleasing and practical audio setups.",
			Features:    "Connect via Bluetooth or nearly any wired source. This speaker features optical, digital coaxial, USB Type-B, stereo RCA, and stereo XLR inputs, allowing you to have up to five wired source devices connected for easy switching. Improved bluetooth technology offers near lossless audio quality at up to 328ft (100m).\n\nDiscover clear, more natural sounding highs than the competition with ZX9's signature planar diaphragm tweeter. Equally important is its powerful room-shaking bass courtesy of a 6.5\" aluminum alloy bass unit. You'll be able to enjoy equal sound quality whether in a large room or small den. Furthermore, you will experience new sensations from old songs since it can respond to even the subtle waveforms of recordings.",
			IncludedItems: []types.IncludedItem{
				{Quantity: 2, Item: "Speaker Unit"},
				{Quantity: 2, Item: "Speaker Cloth Panel"},
				{Quantity: 1, Item: "User Manual"},
				{Quantity: 1, Item: "3.5mm 10m Audio Cable"},
				{Quantity: 1, Item: "10m Optical Cable"},
			},
			Gallery:         assetGallery("zx9-speaker"),
			Images:          assetImages("zx9-speaker", "image-product"),
			CategoryImage:   assetImages("zx9-speaker", "image-category-page-preview"),
			RelatedProducts: []string{"zx7-speaker", "xx99-mark-one-headphones", "xx59-headphones"},
		},
		{
			Slug:        "zx7-speaker",
			Name:        "ZX7 Speaker",
			Category:    enums.CategorySpeakers,
			Price:       3500,
			Description: "Stream high quality sound wirelessly with minimal loss. The ZX7 bookshelf speaker uses high-end audiophile components that represents the top of the line powered speakers for home or studio use.",
			Features:    "Reap the advantages of a flat diaphragm tweeter cone. This provides a fast response rate and excellent high frequencies that lower tiered bookshelf speakers cannot provide. The woofers are made from aluminum that produces a unique and clear sound. XLR inputs allow you to connect to a mixer for more advanced usage.\n\nThe ZX7 speaker is the perfect blend of stylish design and high performance. It houses an encased MDF wooden enclosure which minimises acoustic resonance. Dual connectivity allows pairing through bluetooth or traditional optical and RCA input. Switch input sources and control volume at your finger tips with the included wireless remote. This versatile speaker is equipped to deliver an authentic listening experience.",
			IncludedItems: []types.IncludedItem{
				{Quantity: 2, Item: "Speaker Unit"},
				{Quantity: 2, Item: "Speaker Cloth Panel"},
				{Quantity: 1, Item: "User Manual"},
				{Quantity: 1, Item: "3.5mm 7.5m Audio Cable"},
				{Quantity: 1, Item: "7.5m Optical Cable"},
			},
			Gallery:         assetGallery("zx7-speaker"),
			Images:          assetImages("zx7-speaker", "image-product"),
			CategoryImage:   assetImages("zx7-speaker", "image-category-page-preview"),
			RelatedProducts: []string{"zx9-speaker", "xx99-mark-one-headphones", "xx59-headphones"},
		},
		{
			Slug:        "yx1-earphones",
			Name:        "YX1 Wireless Earphones",
			Category:    enums.CategoryEarphones,
			IsNew:       true,
			Price:       599,
			Description: "Tailor your listening experience with bespoke dynamic drivers from the new YX1 Wireless Earphones. Enjoy incredible high-fidelity sound even in noisy environments with its active noise cancellation feature.",
			Features:    "Experience unrivalled stereo sound thanks to innovative acoustic technology. With improved ergonomics designed for full day wearing, these revolutionary earphones have been finely crafted to provide you with the perfect fit, delivering complete comfort all day long while enjoying exceptional noise isolation and truly immersive sound.\n\nThe YX1 Wireless Earphones features customizable controls for volume, music, calls, and voice assistants built into both earbuds. The new 7-hour battery life can be extended up to 28 hours with the charging case, giving you uninterrupted play time. Exquisite craftsmanship with a splash resistant design now available in an all new white and grey color scheme as well as the popular classic black.",
			IncludedItems: []types.IncludedItem{
				{Quantity: 2, Item: "Earphone Unit"},
				{Quantity: 6, Item: "Multi-size Earplugs"},
				{Quantity: 1, Item: "User Manual"},
				{Quantity: 1, Item: "USB-C Charging Cable"},
				{Quantity: 1, Item: "Travel Pouch"},
			},
			Gallery:         assetGallery("yx1-earphones"),
			Images:          assetImages("yx1-earphones", "image-product"),
			CategoryImage:   assetImages("yx1-earphones", "image-category-page-preview"),
			RelatedProducts: []string{"xx99-mark-one-headphones", "xx59-headphones", "zx9-speaker"},
		},
	}
}
