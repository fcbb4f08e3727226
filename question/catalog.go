package question

// Catalog is the static set of coding questions available during a
// session. It is reference data: built once at startup, read-only
// afterwards.
type Catalog struct {
	questions []Question
	byId      map[string]int
}

func NewCatalog(questions []Question) *Catalog {
	c := &Catalog{
		questions: questions,
		byId:      make(map[string]int, len(questions)),
	}
	for i, q := range questions {
		c.byId[q.ID] = i
	}
	return c
}

// NewDefaultCatalog returns the built-in question set.
func NewDefaultCatalog() *Catalog {
	return NewCatalog(defaultQuestions)
}

func (c *Catalog) Get(id string) (Question, error) {
	i, ok := c.byId[id]
	if !ok {
		return Question{}, ErrQuestionNotFound()
	}
	return c.questions[i], nil
}

func (c *Catalog) List() []Question {
	res := make([]Question, len(c.questions))
	copy(res, c.questions)
	return res
}

var defaultQuestions = []Question{
	{
		ID:          "two-sum",
		Title:       "Two Sum",
		Description: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target. You may assume that each input would have exactly one solution, and you may not use the same element twice.",
		Examples: []Example{
			{
				Input:       "nums = [2,7,11,15], target = 9",
				Output:      "[0,1]",
				Explanation: "Because nums[0] + nums[1] == 9, we return [0, 1].",
			},
			{
				Input:       "nums = [3,2,4], target = 6",
				Output:      "[1,2]",
				Explanation: "Because nums[1] + nums[2] == 6, we return [1, 2].",
			},
		},
		Constraints: []string{
			"2 <= nums.length <= 10^4",
			"-10^9 <= nums[i] <= 10^9",
			"-10^9 <= target <= 10^9",
			"Only one valid answer exists.",
		},
		InputVars: []InputVar{
			{Name: "nums", Kind: VarKindArray},
			{Name: "target", Kind: VarKindInt},
		},
		StarterCode: map[string]string{
			"javascript": `const readline = require('readline');
const rl = readline.createInterface({ input: process.stdin, output: process.stdout });

let input = [];

rl.on('line', function(line) {
    input.push(line);
}).on('close', function() {
    const nums = JSON.parse(input[0]);
    const target = parseInt(input[1]);

    function twoSum(nums, target) {
        const map = new Map();
        for (let i = 0; i < nums.length; i++) {
            const complement = target - nums[i];
            if (map.has(complement)) {
                return [map.get(complement), i];
            }
            map.set(nums[i], i);
        }
        return [];
    }

    const result = twoSum(nums, target);
    console.log(JSON.stringify(result));
});`,
			"python": `def two_sum(nums, target):
    num_map = {}
    for i, num in enumerate(nums):
        complement = target - num
        if complement in num_map:
            return [num_map[complement], i]
        num_map[num] = i
    return []

nums = eval(input())
target = int(input())

result = two_sum(nums, target)
print(result)`,
			"java": `import java.util.*;
import java.io.*;

class Main {
    public static int[] twoSum(int[] nums, int target) {
        Map<Integer, Integer> map = new HashMap<>();
        for (int i = 0; i < nums.length; i++) {
            int complement = target - nums[i];
            if (map.containsKey(complement)) {
                return new int[] { map.get(complement), i };
            }
            map.put(nums[i], i);
        }
        return new int[0];
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        String numsStr = scanner.nextLine();
        int target = scanner.nextInt();

        String[] numsStrArray = numsStr.substring(1, numsStr.length() - 1).split(",");
        int[] nums = new int[numsStrArray.length];
        for (int i = 0; i < numsStrArray.length; i++) {
            nums[i] = Integer.parseInt(numsStrArray[i].trim());
        }

        int[] result = twoSum(nums, target);
        System.out.println(Arrays.toString(result));
    }
}`,
		},
	},
	{
		ID:          "reverse-string",
		Title:       "Reverse String",
		Description: "Write a function that reverses a string. The input string is given as an array of characters s. You must do this by modifying the input array in-place with O(1) extra memory.",
		Examples: []Example{
			{
				Input:  `s = ["h","e","l","l","o"]`,
				Output: `["o","l","l","e","h"]`,
			},
			{
				Input:  `s = ["H","a","n","n","a","h"]`,
				Output: `["h","a","n","n","a","H"]`,
			},
		},
		Constraints: []string{
			"1 <= s.length <= 10^5",
			"s[i] is a printable ascii character",
		},
		InputVars: []InputVar{
			{Name: "s", Kind: VarKindArray},
		},
		StarterCode: map[string]string{
			"javascript": `const readline = require('readline');
const rl = readline.createInterface({ input: process.stdin, output: process.stdout });

let input = [];

rl.on('line', function(line) {
    input.push(line);
}).on('close', function() {
    const s = JSON.parse(input[0]);

    function reverseString(s) {
        // Write your solution here
    }

    reverseString(s);
    console.log(JSON.stringify(s));
});`,
			"python": `import json

def reverse_string(s):
    # Write your solution here
    pass

s = json.loads(input())
reverse_string(s)
print(json.dumps(s, separators=(",", ":")))`,
			"java": `import java.util.*;

class Main {
    public static void reverseString(char[] s) {
        // Write your solution here
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        String line = scanner.nextLine();
        String[] parts = line.substring(1, line.length() - 1).split(",");
        char[] s = new char[parts.length];
        for (int i = 0; i < parts.length; i++) {
            String p = parts[i].trim();
            s[i] = p.charAt(1);
        }
        reverseString(s);
        StringBuilder sb = new StringBuilder("[");
        for (int i = 0; i < s.length; i++) {
            if (i > 0) sb.append(",");
            sb.append('"').append(s[i]).append('"');
        }
        sb.append("]");
        System.out.println(sb);
    }
}`,
		},
	},
	{
		ID:          "palindrome-number",
		Title:       "Palindrome Number",
		Description: "Given an integer x, return true if x is a palindrome, and false otherwise. An integer is a palindrome when it reads the same forward and backward.",
		Examples: []Example{
			{
				Input:       "x = 121",
				Output:      "true",
				Explanation: "121 reads as 121 from left to right and from right to left.",
			},
			{
				Input:       "x = -121",
				Output:      "false",
				Explanation: "From left to right, it reads -121. From right to left, it becomes 121-. Therefore it is not a palindrome.",
			},
		},
		Constraints: []string{
			"-2^31 <= x <= 2^31 - 1",
		},
		InputVars: []InputVar{
			{Name: "x", Kind: VarKindInt},
		},
		StarterCode: map[string]string{
			"javascript": `const readline = require('readline');
const rl = readline.createInterface({ input: process.stdin, output: process.stdout });

rl.on('line', function(line) {
    const x = parseInt(line);

    function isPalindrome(x) {
        // Write your solution here
    }

    console.log(isPalindrome(x) ? "true" : "false");
    rl.close();
});`,
			"python": `def is_palindrome(x):
    # Write your solution here
    pass

x = int(input())
print("true" if is_palindrome(x) else "false")`,
			"java": `import java.util.*;

class Main {
    public static boolean isPalindrome(int x) {
        // Write your solution here
        return false;
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        int x = scanner.nextInt();
        System.out.println(isPalindrome(x));
    }
}`,
		},
	},
	{
		ID:          "valid-parentheses",
		Title:       "Valid Parentheses",
		Description: "Given a string s containing just the characters '(', ')', '{', '}', '[' and ']', determine if the input string is valid. An input string is valid if open brackets are closed by the same type of brackets and in the correct order.",
		Examples: []Example{
			{
				Input:  `s = "()"`,
				Output: "true",
			},
			{
				Input:  `s = "()[]{}"`,
				Output: "true",
			},
			{
				Input:  `s = "(]"`,
				Output: "false",
			},
		},
		Constraints: []string{
			"1 <= s.length <= 10^4",
			"s consists of parentheses only '()[]{}'",
		},
		InputVars: []InputVar{
			{Name: "s", Kind: VarKindString},
		},
		StarterCode: map[string]string{
			"javascript": `const readline = require('readline');
const rl = readline.createInterface({ input: process.stdin, output: process.stdout });

rl.on('line', function(line) {
    const s = JSON.parse(line);

    function isValid(s) {
        // Write your solution here
    }

    console.log(isValid(s) ? "true" : "false");
    rl.close();
});`,
			"python": `import json

def is_valid(s):
    # Write your solution here
    pass

s = json.loads(input())
print("true" if is_valid(s) else "false")`,
			"java": `import java.util.*;

class Main {
    public static boolean isValid(String s) {
        // Write your solution here
        return false;
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        String s = scanner.nextLine();
        s = s.substring(1, s.length() - 1);
        System.out.println(isValid(s));
    }
}`,
		},
	},
	{
		ID:          "merge-sorted-arrays",
		Title:       "Merge Sorted Arrays",
		Description: "You are given two integer arrays nums1 and nums2, sorted in non-decreasing order, and two integers m and n, representing the number of elements in nums1 and nums2 respectively. Merge nums1 and nums2 into a single array sorted in non-decreasing order, stored inside nums1.",
		Examples: []Example{
			{
				Input:       "nums1 = [1,2,3,0,0,0], m = 3, nums2 = [2,5,6], n = 3",
				Output:      "[1,2,2,3,5,6]",
				Explanation: "The arrays we are merging are [1,2,3] and [2,5,6]. The result is [1,2,2,3,5,6].",
			},
		},
		Constraints: []string{
			"nums1.length == m + n",
			"nums2.length == n",
			"0 <= m, n <= 200",
			"1 <= m + n <= 200",
		},
		InputVars: []InputVar{
			{Name: "nums1", Kind: VarKindArray},
			{Name: "m", Kind: VarKindInt},
			{Name: "nums2", Kind: VarKindArray},
			{Name: "n", Kind: VarKindInt},
		},
		StarterCode: map[string]string{
			"javascript": `const readline = require('readline');
const rl = readline.createInterface({ input: process.stdin, output: process.stdout });

let input = [];

rl.on('line', function(line) {
    input.push(line);
}).on('close', function() {
    const nums1 = JSON.parse(input[0]);
    const m = parseInt(input[1]);
    const nums2 = JSON.parse(input[2]);
    const n = parseInt(input[3]);

    function merge(nums1, m, nums2, n) {
        // Write your solution here
    }

    merge(nums1, m, nums2, n);
    console.log(JSON.stringify(nums1));
});`,
			"python": `import json

def merge(nums1, m, nums2, n):
    # Write your solution here
    pass

nums1 = json.loads(input())
m = int(input())
nums2 = json.loads(input())
n = int(input())
merge(nums1, m, nums2, n)
print(json.dumps(nums1, separators=(",", ":")))`,
			"java": `import java.util.*;

class Main {
    public static void merge(int[] nums1, int m, int[] nums2, int n) {
        // Write your solution here
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        int[] nums1 = parseArray(scanner.nextLine());
        int m = Integer.parseInt(scanner.nextLine().trim());
        int[] nums2 = parseArray(scanner.nextLine());
        int n = Integer.parseInt(scanner.nextLine().trim());
        merge(nums1, m, nums2, n);
        System.out.println(Arrays.toString(nums1).replace(" ", ""));
    }

    static int[] parseArray(String line) {
        String body = line.substring(1, line.length() - 1).trim();
        if (body.isEmpty()) return new int[0];
        String[] parts = body.split(",");
        int[] res = new int[parts.length];
        for (int i = 0; i < parts.length; i++) {
            res[i] = Integer.parseInt(parts[i].trim());
        }
        return res;
    }
}`,
		},
	},
	{
		ID:          "binary-search",
		Title:       "Binary Search",
		Description: "Given an array of integers nums which is sorted in ascending order, and an integer target, write a function to search target in nums. If target exists, then return its index. Otherwise, return -1. You must write an algorithm with O(log n) runtime complexity.",
		Examples: []Example{
			{
				Input:       "nums = [-1,0,3,5,9,12], target = 9",
				Output:      "4",
				Explanation: "9 exists in nums and its index is 4",
			},
			{
				Input:       "nums = [-1,0,3,5,9,12], target = 2",
				Output:      "-1",
				Explanation: "2 does not exist in nums so return -1",
			},
		},
		Constraints: []string{
			"1 <= nums.length <= 10^4",
			"-10^4 < nums[i], target < 10^4",
			"All the integers in nums are unique",
			"nums is sorted in ascending order",
		},
		InputVars: []InputVar{
			{Name: "nums", Kind: VarKindArray},
			{Name: "target", Kind: VarKindInt},
		},
		StarterCode: map[string]string{
			"javascript": `const readline = require('readline');
const rl = readline.createInterface({ input: process.stdin, output: process.stdout });

let input = [];

rl.on('line', function(line) {
    input.push(line);
}).on('close', function() {
    const nums = JSON.parse(input[0]);
    const target = parseInt(input[1]);

    function search(nums, target) {
        // Write your solution here
    }

    console.log(search(nums, target));
});`,
			"python": `import json

def search(nums, target):
    # Write your solution here
    pass

nums = json.loads(input())
target = int(input())
print(search(nums, target))`,
			"java": `import java.util.*;

class Main {
    public static int search(int[] nums, int target) {
        // Write your solution here
        return -1;
    }

    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        String line = scanner.nextLine();
        String[] parts = line.substring(1, line.length() - 1).split(",");
        int[] nums = new int[parts.length];
        for (int i = 0; i < parts.length; i++) {
            nums[i] = Integer.parseInt(parts[i].trim());
        }
        int target = Integer.parseInt(scanner.nextLine().trim());
        System.out.println(search(nums, target));
    }
}`,
		},
	},
}
